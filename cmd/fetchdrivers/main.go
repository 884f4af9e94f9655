// Binary fetchdrivers downloads the driver binaries for all supported
// browsers into the drivers/ directory, so test runs can start sessions
// without network access.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/uiauto/webforge/internal/driver"
)

var driversDir = flag.String("drivers_dir", filepath.Join(driver.DriversDir, "auto"), "Directory to download driver binaries into.")

func main() {
	flag.Parse()

	if err := driver.Prefetch(context.Background(), *driversDir); err != nil {
		glog.Errorf("Downloading drivers: %s", err)
		os.Exit(1)
	}
	glog.Infof("Driver binaries ready in %s", *driversDir)
}
