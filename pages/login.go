// Package pages holds the page objects for the saucedemo storefront.
// Each page wraps the shared action layer and exposes the interactions
// that page supports; locators are resolved by key from the registry.
package pages

import (
	"fmt"

	"github.com/uiauto/webforge/internal/actions"
)

// LoginPage drives the saucedemo login form.
type LoginPage struct {
	act *actions.Actions
}

// NewLoginPage wraps the action layer for the login page.
func NewLoginPage(act *actions.Actions) *LoginPage {
	return &LoginPage{act: act}
}

// Open navigates to the storefront's base URL from the registry.
func (p *LoginPage) Open() error {
	url, err := p.act.Registry().Locator("sauce_demo_url")
	if err != nil {
		return fmt.Errorf("pages: resolving base URL: %w", err)
	}
	return p.act.NavigateTo(url)
}

// Login fills the credentials and submits the form.
func (p *LoginPage) Login(username, password string) error {
	if err := p.act.Type("LoginPageUsernameinputField_XPATH", username); err != nil {
		return err
	}
	if err := p.act.Type("LoginPagePasswordinputField_XPATH", password); err != nil {
		return err
	}
	return p.act.Click("LoginPageloginButton_XPATH")
}

// LoginAsStandardUser signs in with the account that reaches the
// inventory page.
func (p *LoginPage) LoginAsStandardUser() error {
	return p.Login("standard_user", "secret_sauce")
}

// LoginAsLockedOutUser signs in with the account the storefront rejects.
func (p *LoginPage) LoginAsLockedOutUser() error {
	return p.Login("locked_out_user", "secret_sauce")
}

// ErrorText returns the validation banner shown for rejected logins.
func (p *LoginPage) ErrorText() (string, error) {
	return p.act.Text("lockedoutuservalidation_XPATH")
}
