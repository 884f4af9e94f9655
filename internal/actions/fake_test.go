package actions

import (
	"fmt"
	"time"

	"github.com/tebeka/selenium"
)

// fakeDriver implements the slice of selenium.WebDriver the action layer
// touches. Unimplemented methods panic through the embedded nil
// interface, which is what we want in tests.
type fakeDriver struct {
	selenium.WebDriver

	findElement  func(by, value string) (selenium.WebElement, error)
	findElements func(by, value string) ([]selenium.WebElement, error)

	windows     []string
	switchedTo  []string
	closedCount int

	alertAfter   int // AlertText calls before an alert is present
	alertCalls   int
	alertText    string
	alertAccepts int
	alertDismiss int
	alertTyped   string

	currentURL string
	title      string
	visited    []string
	screenshot []byte
	scripts    []string
	frames     []interface{}

	doubleClicks int
	clicks       []int
	buttonDowns  int
	buttonUps    int
}

func (d *fakeDriver) WaitWithTimeoutAndInterval(cond selenium.Condition, timeout, interval time.Duration) error {
	start := time.Now()
	for {
		ok, err := cond(d)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Since(start) > timeout {
			return fmt.Errorf("timeout after %v", time.Since(start))
		}
		time.Sleep(interval)
	}
}

func (d *fakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	if d.findElement == nil {
		return nil, fmt.Errorf("no such element: %s=%s", by, value)
	}
	return d.findElement(by, value)
}

func (d *fakeDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	if d.findElements == nil {
		return nil, fmt.Errorf("no such elements: %s=%s", by, value)
	}
	return d.findElements(by, value)
}

func (d *fakeDriver) WindowHandles() ([]string, error) { return d.windows, nil }

func (d *fakeDriver) SwitchWindow(name string) error {
	d.switchedTo = append(d.switchedTo, name)
	return nil
}

func (d *fakeDriver) Close() error {
	d.closedCount++
	if len(d.windows) > 0 {
		d.windows = d.windows[:len(d.windows)-1]
	}
	return nil
}

func (d *fakeDriver) AlertText() (string, error) {
	d.alertCalls++
	if d.alertCalls <= d.alertAfter {
		return "", fmt.Errorf("no alert open")
	}
	return d.alertText, nil
}

func (d *fakeDriver) AcceptAlert() error  { d.alertAccepts++; return nil }
func (d *fakeDriver) DismissAlert() error { d.alertDismiss++; return nil }

func (d *fakeDriver) SetAlertText(text string) error {
	d.alertTyped = text
	return nil
}

func (d *fakeDriver) CurrentURL() (string, error) { return d.currentURL, nil }
func (d *fakeDriver) Title() (string, error)      { return d.title, nil }

func (d *fakeDriver) Get(url string) error {
	d.visited = append(d.visited, url)
	return nil
}

func (d *fakeDriver) Screenshot() ([]byte, error) { return d.screenshot, nil }

func (d *fakeDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.scripts = append(d.scripts, script)
	return nil, nil
}

func (d *fakeDriver) SwitchFrame(frame interface{}) error {
	d.frames = append(d.frames, frame)
	return nil
}

func (d *fakeDriver) DoubleClick() error { d.doubleClicks++; return nil }

func (d *fakeDriver) Click(button int) error {
	d.clicks = append(d.clicks, button)
	return nil
}

func (d *fakeDriver) ButtonDown() error { d.buttonDowns++; return nil }
func (d *fakeDriver) ButtonUp() error   { d.buttonUps++; return nil }

// fakeElement implements the element surface the action layer touches.
type fakeElement struct {
	selenium.WebElement

	displayed bool
	enabled   bool
	selected  bool
	text      string
	tag       string
	attrs     map[string]string

	sent      []string
	clicks    int
	cleared   int
	submitted int
	moves     int

	children func(by, value string) ([]selenium.WebElement, error)
}

func (e *fakeElement) Click() error  { e.clicks++; return nil }
func (e *fakeElement) Clear() error  { e.cleared++; return nil }
func (e *fakeElement) Submit() error { e.submitted++; return nil }

func (e *fakeElement) SendKeys(keys string) error {
	e.sent = append(e.sent, keys)
	return nil
}

func (e *fakeElement) Text() (string, error)       { return e.text, nil }
func (e *fakeElement) TagName() (string, error)    { return e.tag, nil }
func (e *fakeElement) IsDisplayed() (bool, error)  { return e.displayed, nil }
func (e *fakeElement) IsEnabled() (bool, error)    { return e.enabled, nil }
func (e *fakeElement) IsSelected() (bool, error)   { return e.selected, nil }
func (e *fakeElement) MoveTo(x, y int) error       { e.moves++; return nil }

func (e *fakeElement) GetAttribute(name string) (string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return "", fmt.Errorf("no attribute %q", name)
	}
	return v, nil
}

func (e *fakeElement) FindElements(by, value string) ([]selenium.WebElement, error) {
	if e.children == nil {
		return nil, nil
	}
	return e.children(by, value)
}

// clickable returns an element in the state element() waits for.
func clickable() *fakeElement {
	return &fakeElement{displayed: true, enabled: true}
}
