// Package actions is the element interaction layer. Every operation
// resolves a symbolic locator through the config registry, blocks until
// the target reaches the required state, performs the driver action and
// emits one structured log line.
package actions

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tebeka/selenium"

	"github.com/uiauto/webforge/internal/config"
	"github.com/uiauto/webforge/internal/locator"
)

const (
	// DefaultTimeout bounds every polling wait unless overridden.
	DefaultTimeout = 10 * time.Second
	// DefaultPollInterval is how often wait conditions are re-evaluated.
	DefaultPollInterval = 500 * time.Millisecond

	// ScreenshotDir is where TakeScreenshot writes PNG files.
	ScreenshotDir = "screenshots"
)

// WaitTimeoutError is returned when a wait condition is not satisfied
// within its timeout.
type WaitTimeoutError struct {
	Target  string
	State   string
	Timeout time.Duration
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("actions: %q did not become %s within %v", e.Target, e.State, e.Timeout)
}

// Actions wraps a live WebDriver session. Page objects hold an *Actions;
// they do not embed it.
type Actions struct {
	wd   selenium.WebDriver
	cfg  *config.Reader
	log  logrus.FieldLogger
	fs   afero.Fs
	poll time.Duration
	wait time.Duration

	// frames entered since the last switch to the default document, used
	// to re-enter enclosing frames when switching to a parent.
	frames []interface{}
}

// Option configures an Actions instance.
type Option func(*Actions)

// WithTimeout overrides the default wait timeout.
func WithTimeout(d time.Duration) Option {
	return func(a *Actions) { a.wait = d }
}

// WithPollInterval overrides the default polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(a *Actions) { a.poll = d }
}

// New returns an action layer bound to the given driver session.
func New(wd selenium.WebDriver, cfg *config.Reader, log logrus.FieldLogger, fsys afero.Fs, opts ...Option) *Actions {
	a := &Actions{
		wd:   wd,
		cfg:  cfg,
		log:  log,
		fs:   fsys,
		poll: DefaultPollInterval,
		wait: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry exposes the config reader so callers can resolve values such
// as the base URL from the same store the locators live in.
func (a *Actions) Registry() *config.Reader {
	return a.cfg
}

func (a *Actions) timeoutOr(d time.Duration) time.Duration {
	if d <= 0 {
		return a.wait
	}
	return d
}

// resolve maps a symbolic locator name to a (strategy, selector) pair.
func (a *Actions) resolve(name string) (by, value string, err error) {
	by, err = locator.Strategy(name)
	if err != nil {
		return "", "", err
	}
	value, err = a.cfg.Locator(name)
	if err != nil {
		return "", "", err
	}
	return by, value, nil
}

// element blocks until an element matching the locator is clickable
// (displayed and enabled) and returns it.
func (a *Actions) element(name string, timeout time.Duration) (selenium.WebElement, error) {
	by, value, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	timeout = a.timeoutOr(timeout)

	var found selenium.WebElement
	cond := func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(by, value)
		if err != nil {
			return false, nil
		}
		displayed, err := el.IsDisplayed()
		if err != nil || !displayed {
			return false, nil
		}
		enabled, err := el.IsEnabled()
		if err != nil || !enabled {
			return false, nil
		}
		found = el
		return true, nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return nil, &WaitTimeoutError{Target: name, State: "clickable", Timeout: timeout}
	}
	return found, nil
}

// elements blocks until at least one match is present, then returns the
// full current match list. The list is not re-polled after presence.
func (a *Actions) elements(name string, timeout time.Duration) ([]selenium.WebElement, error) {
	by, value, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	timeout = a.timeoutOr(timeout)

	cond := func(wd selenium.WebDriver) (bool, error) {
		els, err := wd.FindElements(by, value)
		if err != nil {
			return false, nil
		}
		return len(els) > 0, nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return nil, &WaitTimeoutError{Target: name, State: "present", Timeout: timeout}
	}
	return a.wd.FindElements(by, value)
}

// ---------------------------------------------------------------------
// Basic interactions
// ---------------------------------------------------------------------

// Click clicks the element.
func (a *Actions) Click(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return fmt.Errorf("actions: clicking %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("clicked element")
	return nil
}

// Type clears the field and types the given text.
func (a *Actions) Type(name, text string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		return fmt.Errorf("actions: clearing %q: %w", name, err)
	}
	if err := el.SendKeys(text); err != nil {
		return fmt.Errorf("actions: typing into %q: %w", name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "text": text}).Info("typed into element")
	return nil
}

// Clear clears the text of an input field.
func (a *Actions) Clear(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		return fmt.Errorf("actions: clearing %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("cleared element")
	return nil
}

// Submit submits the form the element belongs to.
func (a *Actions) Submit(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.Submit(); err != nil {
		return fmt.Errorf("actions: submitting via %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("submitted form")
	return nil
}

// PressKey sends a symbolic keyboard key (e.g. "enter", "tab", "escape",
// any case) to the element.
func (a *Actions) PressKey(name, key string) error {
	code, err := keyCode(key)
	if err != nil {
		return err
	}
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.SendKeys(code); err != nil {
		return fmt.Errorf("actions: pressing %q on %q: %w", key, name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "key": key}).Info("pressed key")
	return nil
}

// UploadFile sends the absolute path of a local file to a file input.
func (a *Actions) UploadFile(name, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("actions: resolving %q: %w", path, err)
	}
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.SendKeys(abs); err != nil {
		return fmt.Errorf("actions: uploading %q to %q: %w", abs, name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "file": abs}).Info("uploaded file")
	return nil
}

// ---------------------------------------------------------------------
// Element state
// ---------------------------------------------------------------------

// Text returns the visible text of the element.
func (a *Actions) Text(name string) (string, error) {
	el, err := a.element(name, 0)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("actions: reading text of %q: %w", name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "text": text}).Info("read element text")
	return text, nil
}

// Attribute returns the value of the named attribute.
func (a *Actions) Attribute(name, attribute string) (string, error) {
	el, err := a.element(name, 0)
	if err != nil {
		return "", err
	}
	value, err := el.GetAttribute(attribute)
	if err != nil {
		return "", fmt.Errorf("actions: reading attribute %q of %q: %w", attribute, name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "attribute": attribute, "value": value}).Info("read element attribute")
	return value, nil
}

// IsDisplayed reports whether the element becomes visible within the
// timeout. A timeout is a normal false result, not an error; resolution
// failures still propagate.
func (a *Actions) IsDisplayed(name string, timeout time.Duration) (bool, error) {
	_, err := a.WaitVisible(name, timeout)
	if err != nil {
		var timedOut *WaitTimeoutError
		if errors.As(err, &timedOut) {
			a.log.WithField("locator", name).Info("element is not displayed")
			return false, nil
		}
		return false, err
	}
	a.log.WithField("locator", name).Info("element is displayed")
	return true, nil
}

// IsEnabled reports whether the element is enabled.
func (a *Actions) IsEnabled(name string) (bool, error) {
	el, err := a.element(name, 0)
	if err != nil {
		return false, err
	}
	enabled, err := el.IsEnabled()
	if err != nil {
		return false, fmt.Errorf("actions: checking enabled state of %q: %w", name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "enabled": enabled}).Info("checked element enabled state")
	return enabled, nil
}

// IsSelected reports whether a checkbox, radio button or option is
// selected.
func (a *Actions) IsSelected(name string) (bool, error) {
	el, err := a.element(name, 0)
	if err != nil {
		return false, err
	}
	selected, err := el.IsSelected()
	if err != nil {
		return false, fmt.Errorf("actions: checking selected state of %q: %w", name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "selected": selected}).Info("checked element selected state")
	return selected, nil
}

// Count returns the number of elements currently matching the locator.
func (a *Actions) Count(name string, timeout time.Duration) (int, error) {
	els, err := a.elements(name, timeout)
	if err != nil {
		return 0, err
	}
	a.log.WithFields(logrus.Fields{"locator": name, "count": len(els)}).Info("counted elements")
	return len(els), nil
}

// ---------------------------------------------------------------------
// Waits
// ---------------------------------------------------------------------

// WaitVisible blocks until the element is displayed and returns it.
func (a *Actions) WaitVisible(name string, timeout time.Duration) (selenium.WebElement, error) {
	by, value, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	timeout = a.timeoutOr(timeout)

	var found selenium.WebElement
	cond := func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(by, value)
		if err != nil {
			return false, nil
		}
		displayed, err := el.IsDisplayed()
		if err != nil || !displayed {
			return false, nil
		}
		found = el
		return true, nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return nil, &WaitTimeoutError{Target: name, State: "visible", Timeout: timeout}
	}
	a.log.WithField("locator", name).Info("element is now visible")
	return found, nil
}

// WaitInvisible blocks until the element is absent or no longer
// displayed.
func (a *Actions) WaitInvisible(name string, timeout time.Duration) error {
	by, value, err := a.resolve(name)
	if err != nil {
		return err
	}
	timeout = a.timeoutOr(timeout)

	cond := func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(by, value)
		if err != nil {
			return true, nil
		}
		displayed, err := el.IsDisplayed()
		if err != nil {
			return true, nil
		}
		return !displayed, nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return &WaitTimeoutError{Target: name, State: "invisible", Timeout: timeout}
	}
	a.log.WithField("locator", name).Info("element is now invisible")
	return nil
}

// WaitTextPresent blocks until the element's text contains the given
// substring.
func (a *Actions) WaitTextPresent(name, text string, timeout time.Duration) error {
	by, value, err := a.resolve(name)
	if err != nil {
		return err
	}
	timeout = a.timeoutOr(timeout)

	cond := func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(by, value)
		if err != nil {
			return false, nil
		}
		current, err := el.Text()
		if err != nil {
			return false, nil
		}
		return strings.Contains(current, text), nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return &WaitTimeoutError{Target: name, State: fmt.Sprintf("showing text %q", text), Timeout: timeout}
	}
	a.log.WithFields(logrus.Fields{"locator": name, "text": text}).Info("text is now present in element")
	return nil
}

// WaitURLContains blocks until the current URL contains the given
// substring.
func (a *Actions) WaitURLContains(text string, timeout time.Duration) error {
	timeout = a.timeoutOr(timeout)

	cond := func(wd selenium.WebDriver) (bool, error) {
		current, err := wd.CurrentURL()
		if err != nil {
			return false, nil
		}
		return strings.Contains(current, text), nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return &WaitTimeoutError{Target: "current URL", State: fmt.Sprintf("containing %q", text), Timeout: timeout}
	}
	a.log.WithField("fragment", text).Info("url now contains fragment")
	return nil
}

// ---------------------------------------------------------------------
// Mouse interactions
// ---------------------------------------------------------------------

// Hover moves the pointer over the element.
func (a *Actions) Hover(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.MoveTo(0, 0); err != nil {
		return fmt.Errorf("actions: hovering over %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("hovered over element")
	return nil
}

// DoubleClick double-clicks the element.
func (a *Actions) DoubleClick(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.MoveTo(0, 0); err != nil {
		return fmt.Errorf("actions: moving to %q: %w", name, err)
	}
	if err := a.wd.DoubleClick(); err != nil {
		return fmt.Errorf("actions: double-clicking %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("double-clicked element")
	return nil
}

// RightClick context-clicks the element.
func (a *Actions) RightClick(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := el.MoveTo(0, 0); err != nil {
		return fmt.Errorf("actions: moving to %q: %w", name, err)
	}
	if err := a.wd.Click(selenium.RightButton); err != nil {
		return fmt.Errorf("actions: right-clicking %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("right-clicked element")
	return nil
}

// DragAndDrop drags the source element onto the target element.
func (a *Actions) DragAndDrop(sourceName, targetName string) error {
	source, err := a.element(sourceName, 0)
	if err != nil {
		return err
	}
	target, err := a.element(targetName, 0)
	if err != nil {
		return err
	}
	if err := source.MoveTo(0, 0); err != nil {
		return fmt.Errorf("actions: moving to %q: %w", sourceName, err)
	}
	if err := a.wd.ButtonDown(); err != nil {
		return fmt.Errorf("actions: pressing button on %q: %w", sourceName, err)
	}
	if err := target.MoveTo(0, 0); err != nil {
		return fmt.Errorf("actions: dragging to %q: %w", targetName, err)
	}
	if err := a.wd.ButtonUp(); err != nil {
		return fmt.Errorf("actions: dropping on %q: %w", targetName, err)
	}
	a.log.WithFields(logrus.Fields{"source": sourceName, "target": targetName}).Info("dragged element")
	return nil
}

// ScrollToElement scrolls the page until the element is centered.
func (a *Actions) ScrollToElement(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	script := "arguments[0].scrollIntoView({behavior: 'smooth', block: 'center'});"
	if _, err := a.wd.ExecuteScript(script, []interface{}{el}); err != nil {
		return fmt.Errorf("actions: scrolling to %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("scrolled to element")
	return nil
}

// ClickWithJS clicks via JavaScript, for cases where the native click is
// intercepted by an overlay.
func (a *Actions) ClickWithJS(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if _, err := a.wd.ExecuteScript("arguments[0].click();", []interface{}{el}); err != nil {
		return fmt.Errorf("actions: js-clicking %q: %w", name, err)
	}
	a.log.WithField("locator", name).Info("js-clicked element")
	return nil
}

// ---------------------------------------------------------------------
// Browser utilities
// ---------------------------------------------------------------------

// CurrentURL returns the browser's current URL.
func (a *Actions) CurrentURL() (string, error) {
	url, err := a.wd.CurrentURL()
	if err != nil {
		return "", fmt.Errorf("actions: reading current url: %w", err)
	}
	a.log.WithField("url", url).Info("read current url")
	return url, nil
}

// Title returns the current page title.
func (a *Actions) Title() (string, error) {
	title, err := a.wd.Title()
	if err != nil {
		return "", fmt.Errorf("actions: reading page title: %w", err)
	}
	a.log.WithField("title", title).Info("read page title")
	return title, nil
}

// NavigateTo loads the given URL.
func (a *Actions) NavigateTo(url string) error {
	if err := a.wd.Get(url); err != nil {
		return fmt.Errorf("actions: navigating to %q: %w", url, err)
	}
	a.log.WithField("url", url).Info("navigated")
	return nil
}

// Refresh reloads the current page.
func (a *Actions) Refresh() error {
	if err := a.wd.Refresh(); err != nil {
		return fmt.Errorf("actions: refreshing page: %w", err)
	}
	a.log.Info("page refreshed")
	return nil
}

// Back navigates one step back in history.
func (a *Actions) Back() error {
	if err := a.wd.Back(); err != nil {
		return fmt.Errorf("actions: navigating back: %w", err)
	}
	a.log.Info("navigated back")
	return nil
}

// Forward navigates one step forward in history.
func (a *Actions) Forward() error {
	if err := a.wd.Forward(); err != nil {
		return fmt.Errorf("actions: navigating forward: %w", err)
	}
	a.log.Info("navigated forward")
	return nil
}

// TakeScreenshot captures the window as PNG under screenshots/ and
// returns the written path. filename should be a bare name like
// "login_page.png".
func (a *Actions) TakeScreenshot(filename string) (string, error) {
	data, err := a.wd.Screenshot()
	if err != nil {
		return "", fmt.Errorf("actions: capturing screenshot: %w", err)
	}
	if err := a.fs.MkdirAll(ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("actions: creating %s: %w", ScreenshotDir, err)
	}
	path := filepath.Join(ScreenshotDir, filename)
	if err := afero.WriteFile(a.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("actions: writing %q: %w", path, err)
	}
	a.log.WithField("path", path).Info("screenshot saved")
	return path, nil
}

// ExecuteScript runs JavaScript in the page and returns its result.
func (a *Actions) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	result, err := a.wd.ExecuteScript(script, args)
	if err != nil {
		return nil, fmt.Errorf("actions: executing script: %w", err)
	}
	a.log.WithField("script", truncate(script, 80)).Info("executed script")
	return result, nil
}

// ---------------------------------------------------------------------
// Frames
// ---------------------------------------------------------------------

// SwitchToFrame switches into the iframe identified by the locator.
func (a *Actions) SwitchToFrame(name string) error {
	el, err := a.element(name, 0)
	if err != nil {
		return err
	}
	if err := a.wd.SwitchFrame(el); err != nil {
		return fmt.Errorf("actions: switching to frame %q: %w", name, err)
	}
	a.frames = append(a.frames, el)
	a.log.WithField("locator", name).Info("switched to frame")
	return nil
}

// SwitchToFrameIndex switches into the iframe at the given index.
func (a *Actions) SwitchToFrameIndex(index int) error {
	if err := a.wd.SwitchFrame(index); err != nil {
		return fmt.Errorf("actions: switching to frame index %d: %w", index, err)
	}
	a.frames = append(a.frames, index)
	a.log.WithField("index", index).Info("switched to frame by index")
	return nil
}

// SwitchToDefault returns to the top-level document.
func (a *Actions) SwitchToDefault() error {
	if err := a.wd.SwitchFrame(nil); err != nil {
		return fmt.Errorf("actions: switching to default content: %w", err)
	}
	a.frames = nil
	a.log.Info("switched to default content")
	return nil
}

// SwitchToParentFrame returns to the immediate enclosing frame. The wire
// client has no parent-frame command, so the path of entered frames is
// replayed from the top.
func (a *Actions) SwitchToParentFrame() error {
	if len(a.frames) == 0 {
		return a.SwitchToDefault()
	}
	remaining := a.frames[:len(a.frames)-1]
	if err := a.wd.SwitchFrame(nil); err != nil {
		return fmt.Errorf("actions: switching to parent frame: %w", err)
	}
	for _, f := range remaining {
		if err := a.wd.SwitchFrame(f); err != nil {
			return fmt.Errorf("actions: re-entering frame %v: %w", f, err)
		}
	}
	a.frames = remaining
	a.log.Info("switched to parent frame")
	return nil
}

// ---------------------------------------------------------------------
// Windows / tabs
// ---------------------------------------------------------------------

// SwitchToWindow switches to the window at the given position in the
// handle sequence.
func (a *Actions) SwitchToWindow(index int) error {
	handles, err := a.wd.WindowHandles()
	if err != nil {
		return fmt.Errorf("actions: listing windows: %w", err)
	}
	if index < 0 || index >= len(handles) {
		return fmt.Errorf("actions: window index %d out of range (%d open)", index, len(handles))
	}
	if err := a.wd.SwitchWindow(handles[index]); err != nil {
		return fmt.Errorf("actions: switching to window %d: %w", index, err)
	}
	a.log.WithField("index", index).Info("switched to window")
	return nil
}

// SwitchToNewWindow switches to the most recently opened window.
func (a *Actions) SwitchToNewWindow() error {
	handles, err := a.wd.WindowHandles()
	if err != nil {
		return fmt.Errorf("actions: listing windows: %w", err)
	}
	if len(handles) == 0 {
		return fmt.Errorf("actions: no windows open")
	}
	if err := a.wd.SwitchWindow(handles[len(handles)-1]); err != nil {
		return fmt.Errorf("actions: switching to newest window: %w", err)
	}
	a.log.Info("switched to newest window")
	return nil
}

// CloseCurrentWindow closes the active window and, if any remain,
// switches back to the first.
func (a *Actions) CloseCurrentWindow() error {
	if err := a.wd.Close(); err != nil {
		return fmt.Errorf("actions: closing window: %w", err)
	}
	handles, err := a.wd.WindowHandles()
	if err != nil {
		return fmt.Errorf("actions: listing windows: %w", err)
	}
	if len(handles) > 0 {
		if err := a.wd.SwitchWindow(handles[0]); err != nil {
			return fmt.Errorf("actions: switching to first window: %w", err)
		}
	}
	a.log.Info("closed current window")
	return nil
}

// WindowCount returns the number of open windows.
func (a *Actions) WindowCount() (int, error) {
	handles, err := a.wd.WindowHandles()
	if err != nil {
		return 0, fmt.Errorf("actions: listing windows: %w", err)
	}
	a.log.WithField("count", len(handles)).Info("counted windows")
	return len(handles), nil
}

// ---------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------

func (a *Actions) waitAlert(timeout time.Duration) error {
	timeout = a.timeoutOr(timeout)
	cond := func(wd selenium.WebDriver) (bool, error) {
		if _, err := wd.AlertText(); err != nil {
			return false, nil
		}
		return true, nil
	}
	if err := a.wd.WaitWithTimeoutAndInterval(cond, timeout, a.poll); err != nil {
		return &WaitTimeoutError{Target: "alert", State: "present", Timeout: timeout}
	}
	return nil
}

// AcceptAlert waits for an alert and accepts it.
func (a *Actions) AcceptAlert(timeout time.Duration) error {
	if err := a.waitAlert(timeout); err != nil {
		return err
	}
	if err := a.wd.AcceptAlert(); err != nil {
		return fmt.Errorf("actions: accepting alert: %w", err)
	}
	a.log.Info("alert accepted")
	return nil
}

// DismissAlert waits for an alert and dismisses it.
func (a *Actions) DismissAlert(timeout time.Duration) error {
	if err := a.waitAlert(timeout); err != nil {
		return err
	}
	if err := a.wd.DismissAlert(); err != nil {
		return fmt.Errorf("actions: dismissing alert: %w", err)
	}
	a.log.Info("alert dismissed")
	return nil
}

// AlertText waits for an alert and returns its text.
func (a *Actions) AlertText(timeout time.Duration) (string, error) {
	if err := a.waitAlert(timeout); err != nil {
		return "", err
	}
	text, err := a.wd.AlertText()
	if err != nil {
		return "", fmt.Errorf("actions: reading alert text: %w", err)
	}
	a.log.WithField("text", text).Info("read alert text")
	return text, nil
}

// TypeIntoAlert waits for a prompt, types into it and accepts it.
func (a *Actions) TypeIntoAlert(text string, timeout time.Duration) error {
	if err := a.waitAlert(timeout); err != nil {
		return err
	}
	if err := a.wd.SetAlertText(text); err != nil {
		return fmt.Errorf("actions: typing into alert: %w", err)
	}
	if err := a.wd.AcceptAlert(); err != nil {
		return fmt.Errorf("actions: accepting alert: %w", err)
	}
	a.log.WithField("text", text).Info("typed into alert and accepted")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
