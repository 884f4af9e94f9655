// Package driver provisions browser sessions. Provisioning is two-tier:
// an auto-managed driver binary is resolved and downloaded on demand;
// when that fails, a manually placed binary under drivers/ is used
// instead.
package driver

import (
	"fmt"
	"strings"

	"github.com/uiauto/webforge/internal/config"
)

// Browser identifies a supported browser.
type Browser string

// The supported browsers.
const (
	Chrome  Browser = "chrome"
	Firefox Browser = "firefox"
	Edge    Browser = "edge"
)

// ParseBrowser validates a browser name.
func ParseBrowser(s string) (Browser, error) {
	switch b := Browser(strings.ToLower(s)); b {
	case Chrome, Firefox, Edge:
		return b, nil
	default:
		return "", fmt.Errorf("driver: unsupported browser %q (use chrome, firefox or edge)", s)
	}
}

// ResolveBrowser determines which browser to use: an explicit flag value
// wins, then the configured [browser] default_browser, then chrome.
func ResolveBrowser(flagValue string, cfg *config.Reader) (Browser, error) {
	if flagValue != "" {
		return ParseBrowser(flagValue)
	}
	if v, err := cfg.Value("browser", "default_browser"); err == nil {
		return ParseBrowser(v)
	}
	return Chrome, nil
}

// UnavailableError is returned when both provisioning tiers are
// exhausted. Its message names the browser, the auto-provisioning
// failure and the manual path the operator should populate.
type UnavailableError struct {
	Browser    Browser
	AutoErr    error
	ManualErr  error
	ManualPath string
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("driver: could not provision a %q session: automatic driver setup failed: %v", e.Browser, e.AutoErr)
	if e.ManualErr != nil {
		msg += fmt.Sprintf("; manual driver at %s failed: %v", e.ManualPath, e.ManualErr)
	} else {
		msg += fmt.Sprintf("; no manual driver binary at %s", e.ManualPath)
	}
	return msg + "; place the matching driver binary in the drivers/ directory and retry"
}

func (e *UnavailableError) Unwrap() error {
	return e.AutoErr
}
