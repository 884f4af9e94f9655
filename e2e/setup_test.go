// Package e2e holds browser scenarios against the saucedemo storefront.
// They only run when --e2e is set, since they need a browser and network
// access:
//
//	go test ./e2e -args --e2e --browser-name chrome --headless
package e2e

import (
	"fmt"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/uiauto/webforge/internal/actions"
	"github.com/uiauto/webforge/internal/config"
	"github.com/uiauto/webforge/internal/driver"
	"github.com/uiauto/webforge/internal/logging"
)

var (
	runE2E      bool
	browserName string
	headless    bool
)

func TestMain(m *testing.M) {
	flags := pflag.NewFlagSet("e2e", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVar(&runE2E, "e2e", false, "run browser scenarios")
	flags.StringVar(&browserName, "browser-name", "", "browser to run against (chrome, firefox or edge)")
	flags.BoolVar(&headless, "headless", false, "run the browser without a visible window")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(m.Run())
}

// newSession provisions a browser session and the action layer bound to
// it. Teardown is registered via t.Cleanup so it runs whether or not the
// scenario fails.
func newSession(t *testing.T) *actions.Actions {
	t.Helper()
	if !runE2E {
		t.Skip("pass --e2e to run browser scenarios")
	}

	fsys := afero.NewOsFs()
	log, closer, err := logging.New(fsys)
	if err != nil {
		t.Fatalf("opening log file: %s", err)
	}
	t.Cleanup(func() { closer.Close() })

	cfg := config.Default(fsys)
	browser, err := driver.ResolveBrowser(browserName, cfg)
	if err != nil {
		t.Fatalf("resolving browser: %s", err)
	}

	sess, err := driver.Provision(driver.Options{
		Browser:  browser,
		Headless: headless,
		Log:      log,
	})
	if err != nil {
		t.Fatalf("provisioning %s session: %s", browser, err)
	}
	act := actions.New(sess.Driver, cfg, log, fsys)
	t.Cleanup(func() {
		if t.Failed() {
			if path, err := act.TakeScreenshot(t.Name() + ".png"); err == nil {
				t.Logf("screenshot saved to %s", path)
			}
		}
		if err := sess.Quit(); err != nil {
			t.Errorf("ending session: %s", err)
		}
	})

	return act
}
