// Package locator maps symbolic locator names to WebDriver selection
// strategies. The strategy is encoded as a suffix on the name, e.g.
// LoginButton_XPATH or SortSelect_CSS; the raw selector itself lives in
// the config registry under the same name.
package locator

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// UnsupportedLocatorTypeError is returned for names whose suffix does not
// match any known strategy.
type UnsupportedLocatorTypeError struct {
	Name string
}

func (e *UnsupportedLocatorTypeError) Error() string {
	return fmt.Sprintf("locator: unsupported locator type: %q", e.Name)
}

// suffixes is checked in order. _PARTIALLINKTEXT must precede _LINKTEXT:
// every partial-link-text name also ends in _LINKTEXT.
var suffixes = []struct {
	suffix string
	by     string
}{
	{"_XPATH", selenium.ByXPATH},
	{"_ID", selenium.ByID},
	{"_NAME", selenium.ByName},
	{"_CSS", selenium.ByCSSSelector},
	{"_CLASS", selenium.ByClassName},
	{"_PARTIALLINKTEXT", selenium.ByPartialLinkText},
	{"_LINKTEXT", selenium.ByLinkText},
}

// Strategy returns the selenium By constant for the given locator name.
func Strategy(name string) (string, error) {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s.suffix) {
			return s.by, nil
		}
	}
	return "", &UnsupportedLocatorTypeError{Name: name}
}
