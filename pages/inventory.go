package pages

import (
	"strconv"

	"github.com/uiauto/webforge/internal/actions"
)

// InventoryPage drives the product listing shown after login.
type InventoryPage struct {
	act *actions.Actions
}

// NewInventoryPage wraps the action layer for the inventory page.
func NewInventoryPage(act *actions.Actions) *InventoryPage {
	return &InventoryPage{act: act}
}

// Title returns the page heading text.
func (p *InventoryPage) Title() (string, error) {
	return p.act.Text("InventoryPageTitle_XPATH")
}

// ItemCount returns the number of listed products.
func (p *InventoryPage) ItemCount() (int, error) {
	return p.act.Count("InventoryItem_CLASS", 0)
}

// SortBy selects a sort order by its visible label, e.g.
// "Price (low to high)".
func (p *InventoryPage) SortBy(label string) error {
	return p.act.SelectByText("ProductSortSelect_CSS", label)
}

// CurrentSort returns the visible label of the active sort order.
func (p *InventoryPage) CurrentSort() (string, error) {
	return p.act.SelectedOptionText("ProductSortSelect_CSS")
}

// AddFirstItemToCart adds the first product to the cart.
func (p *InventoryPage) AddFirstItemToCart() error {
	return p.act.Click("FirstAddToCartButton_ID")
}

// CartBadgeCount returns the cart badge value, or 0 when the badge is
// not shown.
func (p *InventoryPage) CartBadgeCount() (int, error) {
	shown, err := p.act.IsDisplayed("CartBadge_CLASS", 0)
	if err != nil {
		return 0, err
	}
	if !shown {
		return 0, nil
	}
	text, err := p.act.Text("CartBadge_CLASS")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(text)
}

// Logout opens the burger menu and follows the logout link.
func (p *InventoryPage) Logout() error {
	if err := p.act.Click("BurgerMenuButton_ID"); err != nil {
		return err
	}
	return p.act.Click("LogoutLink_ID")
}
