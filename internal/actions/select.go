package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// selectElement acquires the element and verifies it carries native
// <select> semantics.
func (a *Actions) selectElement(name string) (selenium.WebElement, error) {
	el, err := a.element(name, 0)
	if err != nil {
		return nil, err
	}
	tagName, err := el.TagName()
	if err != nil || strings.ToLower(tagName) != "select" {
		return nil, fmt.Errorf(`actions: %q should have been "select" but was %q`, name, tagName)
	}
	return el, nil
}

func selectOptions(el selenium.WebElement) ([]selenium.WebElement, error) {
	return el.FindElements(selenium.ByTagName, "option")
}

// setSelected clicks the option only if its state differs from the
// desired one.
func setSelected(option selenium.WebElement, selected bool) error {
	current, err := option.IsSelected()
	if err != nil {
		return err
	}
	if current != selected {
		return option.Click()
	}
	return nil
}

func escapeQuotes(s string) string {
	return strings.Replace(s, `"`, `\"`, -1)
}

// SelectByText selects the dropdown option whose visible text matches.
func (a *Actions) SelectByText(name, text string) error {
	el, err := a.selectElement(name)
	if err != nil {
		return err
	}
	options, err := el.FindElements(selenium.ByXPATH, `.//option[normalize-space(.) = "`+escapeQuotes(text)+`"]`)
	if err != nil {
		return fmt.Errorf("actions: locating option %q in %q: %w", text, name, err)
	}
	if len(options) == 0 {
		return fmt.Errorf("actions: cannot locate option with text %q in %q", text, name)
	}
	if err := setSelected(options[0], true); err != nil {
		return fmt.Errorf("actions: selecting option %q in %q: %w", text, name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "text": text}).Info("selected dropdown option by text")
	return nil
}

// SelectByValue selects the dropdown option with the given value
// attribute.
func (a *Actions) SelectByValue(name, value string) error {
	el, err := a.selectElement(name)
	if err != nil {
		return err
	}
	options, err := el.FindElements(selenium.ByXPATH, `.//option[@value = "`+escapeQuotes(value)+`"]`)
	if err != nil {
		return fmt.Errorf("actions: locating option value %q in %q: %w", value, name, err)
	}
	if len(options) == 0 {
		return fmt.Errorf("actions: cannot locate option with value %q in %q", value, name)
	}
	if err := setSelected(options[0], true); err != nil {
		return fmt.Errorf("actions: selecting option value %q in %q: %w", value, name, err)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "value": value}).Info("selected dropdown option by value")
	return nil
}

// SelectByIndex selects the option at the given index. The index comes
// from the option's index property, not its position in the match list.
func (a *Actions) SelectByIndex(name string, index int) error {
	el, err := a.selectElement(name)
	if err != nil {
		return err
	}
	options, err := selectOptions(el)
	if err != nil {
		return fmt.Errorf("actions: listing options of %q: %w", name, err)
	}
	want := strconv.Itoa(index)
	for _, option := range options {
		idx, err := option.GetAttribute("index")
		if err != nil {
			continue
		}
		if idx == want {
			if err := setSelected(option, true); err != nil {
				return fmt.Errorf("actions: selecting option %d in %q: %w", index, name, err)
			}
			a.log.WithFields(logrus.Fields{"locator": name, "index": index}).Info("selected dropdown option by index")
			return nil
		}
	}
	return fmt.Errorf("actions: cannot locate option with index %d in %q", index, name)
}

// SelectedOptionText returns the text of the first selected option.
func (a *Actions) SelectedOptionText(name string) (string, error) {
	el, err := a.selectElement(name)
	if err != nil {
		return "", err
	}
	options, err := selectOptions(el)
	if err != nil {
		return "", fmt.Errorf("actions: listing options of %q: %w", name, err)
	}
	for _, option := range options {
		selected, err := option.IsSelected()
		if err != nil {
			return "", fmt.Errorf("actions: checking option of %q: %w", name, err)
		}
		if selected {
			text, err := option.Text()
			if err != nil {
				return "", fmt.Errorf("actions: reading option text of %q: %w", name, err)
			}
			a.log.WithFields(logrus.Fields{"locator": name, "text": text}).Info("read selected option")
			return text, nil
		}
	}
	return "", fmt.Errorf("actions: no option selected in %q", name)
}

// OptionTexts returns the visible text of every option in document
// order.
func (a *Actions) OptionTexts(name string) ([]string, error) {
	el, err := a.selectElement(name)
	if err != nil {
		return nil, err
	}
	options, err := selectOptions(el)
	if err != nil {
		return nil, fmt.Errorf("actions: listing options of %q: %w", name, err)
	}
	texts := make([]string, 0, len(options))
	for _, option := range options {
		text, err := option.Text()
		if err != nil {
			return nil, fmt.Errorf("actions: reading option text of %q: %w", name, err)
		}
		texts = append(texts, text)
	}
	a.log.WithFields(logrus.Fields{"locator": name, "options": texts}).Info("listed dropdown options")
	return texts, nil
}
