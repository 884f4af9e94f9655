package actions

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
)

// newSortSelect builds a fake <select> matching the saucedemo sort
// control.
func newSortSelect() (*fakeElement, []*fakeElement) {
	options := []*fakeElement{
		{text: "Name (A to Z)", attrs: map[string]string{"value": "az", "index": "0"}, selected: true},
		{text: "Name (Z to A)", attrs: map[string]string{"value": "za", "index": "1"}},
		{text: "Price (low to high)", attrs: map[string]string{"value": "lohi", "index": "2"}},
		{text: "Price (high to low)", attrs: map[string]string{"value": "hilo", "index": "3"}},
	}
	sel := &fakeElement{displayed: true, enabled: true, tag: "select"}
	sel.children = func(by, value string) ([]selenium.WebElement, error) {
		var out []selenium.WebElement
		for _, o := range options {
			switch by {
			case selenium.ByTagName:
				out = append(out, o)
			case selenium.ByXPATH:
				if strings.Contains(value, `"`+o.text+`"`) || strings.Contains(value, `"`+o.attrs["value"]+`"`) {
					out = append(out, o)
				}
			}
		}
		return out, nil
	}
	return sel, options
}

func newSelectActions(t *testing.T, sel *fakeElement) *Actions {
	t.Helper()
	fd := &fakeDriver{
		findElement: func(by, value string) (selenium.WebElement, error) { return sel, nil },
	}
	a, _ := newTestActions(t, fd)
	return a
}

func TestSelectByText(t *testing.T) {
	sel, options := newSortSelect()
	a := newSelectActions(t, sel)

	require.NoError(t, a.SelectByText("Sort_CSS", "Price (low to high)"))
	require.Equal(t, 1, options[2].clicks)
}

func TestSelectByTextAlreadySelected(t *testing.T) {
	sel, options := newSortSelect()
	a := newSelectActions(t, sel)

	// Clicking a selected option would toggle nothing; it is skipped.
	require.NoError(t, a.SelectByText("Sort_CSS", "Name (A to Z)"))
	require.Equal(t, 0, options[0].clicks)
}

func TestSelectByTextMissing(t *testing.T) {
	sel, _ := newSortSelect()
	a := newSelectActions(t, sel)

	err := a.SelectByText("Sort_CSS", "Rating")
	require.ErrorContains(t, err, `cannot locate option with text "Rating"`)
}

func TestSelectByValue(t *testing.T) {
	sel, options := newSortSelect()
	a := newSelectActions(t, sel)

	require.NoError(t, a.SelectByValue("Sort_CSS", "za"))
	require.Equal(t, 1, options[1].clicks)
}

func TestSelectByIndex(t *testing.T) {
	sel, options := newSortSelect()
	a := newSelectActions(t, sel)

	require.NoError(t, a.SelectByIndex("Sort_CSS", 3))
	require.Equal(t, 1, options[3].clicks)

	require.Error(t, a.SelectByIndex("Sort_CSS", 9))
}

func TestSelectRejectsNonSelect(t *testing.T) {
	div := &fakeElement{displayed: true, enabled: true, tag: "div"}
	a := newSelectActions(t, div)

	err := a.SelectByText("Sort_CSS", "anything")
	require.ErrorContains(t, err, `should have been "select"`)
}

func TestSelectedOptionText(t *testing.T) {
	sel, _ := newSortSelect()
	a := newSelectActions(t, sel)

	text, err := a.SelectedOptionText("Sort_CSS")
	require.NoError(t, err)
	require.Equal(t, "Name (A to Z)", text)
}

func TestOptionTexts(t *testing.T) {
	sel, _ := newSortSelect()
	a := newSelectActions(t, sel)

	got, err := a.OptionTexts("Sort_CSS")
	require.NoError(t, err)

	want := []string{
		"Name (A to Z)",
		"Name (Z to A)",
		"Price (low to high)",
		"Price (high to low)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("OptionTexts() mismatch (-want +got):\n%s", diff)
	}
}
