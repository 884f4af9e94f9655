package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uiauto/webforge/pages"
)

func TestStandardUserLandsOnInventory(t *testing.T) {
	act := newSession(t)
	login := pages.NewLoginPage(act)
	inventory := pages.NewInventoryPage(act)

	require.NoError(t, login.Open())
	require.NoError(t, login.LoginAsStandardUser())

	title, err := inventory.Title()
	require.NoError(t, err)
	require.Equal(t, "Products", title)
}

func TestLockedOutUserSeesValidationMessage(t *testing.T) {
	act := newSession(t)
	login := pages.NewLoginPage(act)

	require.NoError(t, login.Open())
	require.NoError(t, login.LoginAsLockedOutUser())

	msg, err := login.ErrorText()
	require.NoError(t, err)
	require.Equal(t, "Epic sadface: Sorry, this user has been locked out.", msg)
}

func TestInventorySortAndCart(t *testing.T) {
	act := newSession(t)
	login := pages.NewLoginPage(act)
	inventory := pages.NewInventoryPage(act)

	require.NoError(t, login.Open())
	require.NoError(t, login.LoginAsStandardUser())

	count, err := inventory.ItemCount()
	require.NoError(t, err)
	require.Equal(t, 6, count)

	require.NoError(t, inventory.SortBy("Price (low to high)"))
	sort, err := inventory.CurrentSort()
	require.NoError(t, err)
	require.Equal(t, "Price (low to high)", sort)

	require.NoError(t, inventory.AddFirstItemToCart())
	badge, err := inventory.CartBadgeCount()
	require.NoError(t, err)
	require.Equal(t, 1, badge)
}
