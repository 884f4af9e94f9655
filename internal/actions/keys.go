package actions

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// UnknownKeyError is returned for symbolic key names outside the
// supported set. Unknown names never fall through to literal text.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("actions: unknown key %q", e.Name)
}

// keyCodes is the closed set of symbolic key names, lower-cased, mapped
// to the WebDriver key codes.
var keyCodes = map[string]string{
	"enter":     selenium.EnterKey,
	"return":    selenium.ReturnKey,
	"tab":       selenium.TabKey,
	"escape":    selenium.EscapeKey,
	"esc":       selenium.EscapeKey,
	"space":     selenium.SpaceKey,
	"backspace": selenium.BackspaceKey,
	"delete":    selenium.DeleteKey,
	"insert":    selenium.InsertKey,
	"clear":     selenium.ClearKey,
	"home":      selenium.HomeKey,
	"end":       selenium.EndKey,
	"pageup":    selenium.PageUpKey,
	"pagedown":  selenium.PageDownKey,
	"up":        selenium.UpArrowKey,
	"down":      selenium.DownArrowKey,
	"left":      selenium.LeftArrowKey,
	"right":     selenium.RightArrowKey,
	"shift":     selenium.ShiftKey,
	"control":   selenium.ControlKey,
	"ctrl":      selenium.ControlKey,
	"alt":       selenium.AltKey,
	"meta":      selenium.MetaKey,
	"pause":     selenium.PauseKey,
	"f1":        selenium.F1Key,
	"f2":        selenium.F2Key,
	"f3":        selenium.F3Key,
	"f4":        selenium.F4Key,
	"f5":        selenium.F5Key,
	"f6":        selenium.F6Key,
	"f7":        selenium.F7Key,
	"f8":        selenium.F8Key,
	"f9":        selenium.F9Key,
	"f10":       selenium.F10Key,
	"f11":       selenium.F11Key,
	"f12":       selenium.F12Key,
}

// keyCode resolves a case-insensitive symbolic key name.
func keyCode(name string) (string, error) {
	code, ok := keyCodes[strings.ToLower(name)]
	if !ok {
		return "", &UnknownKeyError{Name: name}
	}
	return code, nil
}
