package driver

import (
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
)

// DriversDir is the conventional location for manually placed driver
// binaries.
const DriversDir = "drivers"

// driverBinaries maps each browser to its driver binary name.
var driverBinaries = map[Browser]string{
	Chrome:  "chromedriver",
	Firefox: "geckodriver",
	Edge:    "msedgedriver",
}

// ManualDriverPath returns where a manually placed driver binary for the
// browser is expected.
func ManualDriverPath(dir string, b Browser) string {
	return filepath.Join(dir, driverBinaries[b])
}

// chromiumHeadlessArgs is shared by Chrome and Edge; both take the same
// switches.
var chromiumHeadlessArgs = []string{
	"--headless=new",
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--window-size=1920,1080",
}

// capabilitiesFor builds the session capabilities for the browser.
func capabilitiesFor(b Browser, headless bool) selenium.Capabilities {
	switch b {
	case Firefox:
		caps := selenium.Capabilities{"browserName": "firefox"}
		f := firefox.Capabilities{}
		if headless {
			f.Args = append(f.Args, "-headless", "--width=1920", "--height=1080")
		}
		caps.AddFirefox(f)
		return caps
	case Edge:
		args := []string{}
		if headless {
			args = append(args, chromiumHeadlessArgs...)
		}
		return selenium.Capabilities{
			"browserName": "MicrosoftEdge",
			"ms:edgeOptions": map[string]interface{}{
				"args": args,
			},
		}
	default:
		caps := selenium.Capabilities{"browserName": "chrome"}
		c := chrome.Capabilities{W3C: true}
		if headless {
			c.Args = append(c.Args, chromiumHeadlessArgs...)
		}
		caps.AddChrome(c)
		return caps
	}
}
