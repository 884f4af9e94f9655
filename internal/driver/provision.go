package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// Options configures session provisioning.
type Options struct {
	Browser  Browser
	Headless bool
	// DriversDir overrides the conventional drivers/ location.
	DriversDir string
	// ServiceOutput receives the driver process's own logging.
	ServiceOutput io.Writer
	Log           logrus.FieldLogger
}

func (o Options) driversDir() string {
	if o.DriversDir != "" {
		return o.DriversDir
	}
	return DriversDir
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	return logrus.StandardLogger()
}

// Session owns a driver service and the WebDriver connected to it. It
// belongs to exactly one test; Quit must run at teardown regardless of
// the test outcome.
type Session struct {
	Driver  selenium.WebDriver
	service *selenium.Service
}

// Quit ends the browser session and stops the driver service. Both are
// always attempted.
func (s *Session) Quit() error {
	var quitErr, stopErr error
	if s.Driver != nil {
		quitErr = s.Driver.Quit()
	}
	if s.service != nil {
		stopErr = s.service.Stop()
	}
	return errors.Join(quitErr, stopErr)
}

type ensureFunc func(ctx context.Context, b Browser, dir string) (string, error)
type startFunc func(opts Options, binaryPath string) (*Session, error)

// Provision produces a ready session for the requested browser, trying
// the auto-managed driver first and a manual binary second.
func Provision(opts Options) (*Session, error) {
	return provision(opts, ensureManagedDriver, startSession)
}

func provision(opts Options, ensure ensureFunc, start startFunc) (*Session, error) {
	if _, ok := driverBinaries[opts.Browser]; !ok {
		return nil, fmt.Errorf("driver: unsupported browser %q (use chrome, firefox or edge)", opts.Browser)
	}
	log := opts.logger()

	// Tier 1: auto-managed driver binary.
	path, err := ensure(context.Background(), opts.Browser, filepath.Join(opts.driversDir(), "auto"))
	if err == nil {
		sess, startErr := start(opts, path)
		if startErr == nil {
			log.WithFields(logrus.Fields{"browser": opts.Browser, "driver": path}).Info("session provisioned via managed driver")
			return sess, nil
		}
		err = startErr
	}
	log.WithError(err).WithField("browser", opts.Browser).Warn("automatic driver setup failed")

	// Tier 2: manually placed binary.
	manual := ManualDriverPath(opts.driversDir(), opts.Browser)
	if _, statErr := os.Stat(manual); statErr == nil {
		log.WithField("driver", manual).Info("falling back to manual driver")
		sess, manualErr := start(opts, manual)
		if manualErr == nil {
			return sess, nil
		}
		return nil, &UnavailableError{
			Browser:    opts.Browser,
			AutoErr:    err,
			ManualErr:  manualErr,
			ManualPath: manual,
		}
	}

	return nil, &UnavailableError{
		Browser:    opts.Browser,
		AutoErr:    err,
		ManualPath: manual,
	}
}

// startSession starts the driver service for the given binary and dials
// a session against it.
func startSession(opts Options, binaryPath string) (*Session, error) {
	port, err := freePort()
	if err != nil {
		return nil, err
	}

	var service *selenium.Service
	var addr string
	var svcOpts []selenium.ServiceOption
	if opts.ServiceOutput != nil {
		svcOpts = append(svcOpts, selenium.Output(opts.ServiceOutput))
	}
	switch opts.Browser {
	case Firefox:
		service, err = selenium.NewGeckoDriverService(binaryPath, port, svcOpts...)
		addr = fmt.Sprintf("http://localhost:%d", port)
	default:
		// msedgedriver speaks the chromedriver protocol, so Edge shares
		// the chromedriver service setup.
		service, err = selenium.NewChromeDriverService(binaryPath, port, svcOpts...)
		addr = fmt.Sprintf("http://localhost:%d/wd/hub", port)
	}
	if err != nil {
		return nil, fmt.Errorf("driver: starting %s service: %w", binaryPath, err)
	}

	wd, err := selenium.NewRemote(capabilitiesFor(opts.Browser, opts.Headless), addr)
	if err != nil {
		service.Stop() // nolint:errcheck // the dial failure is the one to report
		return nil, fmt.Errorf("driver: creating %s session: %w", opts.Browser, err)
	}

	sess := &Session{Driver: wd, service: service}
	if !opts.Headless {
		if err := wd.MaximizeWindow(""); err != nil {
			sess.Quit() // nolint:errcheck
			return nil, fmt.Errorf("driver: maximizing window: %w", err)
		}
	}
	return sess, nil
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("driver: finding a free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
