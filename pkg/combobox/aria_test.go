package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAriaInputAttributes(t *testing.T) {
	cfg := testConfig(WithNamespace[string]("fruit"))
	st := apply(cfg, InitialState([]string{"apple", "banana"}), FocusedInput{})

	a := ToAria(cfg, st)

	assert.Equal(t, "fruit-input", a.Input["id"])
	assert.Equal(t, "combobox", a.Input["role"])
	assert.Equal(t, "listbox", a.Input["aria-haspopup"])
	assert.Equal(t, "list", a.Input["aria-autocomplete"])
	assert.Equal(t, "fruit-list", a.Input["aria-controls"])
	assert.Equal(t, "fruit-label", a.Input["aria-labelledby"])
	assert.Equal(t, "fruit-helper", a.Input["aria-describedby"])
	assert.Equal(t, "true", a.Input["aria-expanded"])
	_, ok := a.Input["aria-activedescendant"]
	assert.False(t, ok, "no active descendant without a highlight")
	_, ok = a.Input["aria-multiselectable"]
	assert.False(t, ok, "single-select input is not multiselectable")
}

func TestAriaExpandedTracksOpenFlag(t *testing.T) {
	cfg := testConfig()
	st := InitialState([]string{"apple"})

	assert.Equal(t, "false", ToAria[string](cfg, st).Input["aria-expanded"])
	st = apply(cfg, st, FocusedInput{})
	assert.Equal(t, "true", ToAria(cfg, st).Input["aria-expanded"])
	st = apply(cfg, st, PressedEscapeKey{})
	assert.Equal(t, "false", ToAria(cfg, st).Input["aria-expanded"])
}

func TestAriaActiveDescendantFollowsHighlight(t *testing.T) {
	cfg := testConfig()
	st := apply(cfg, InitialState([]string{"apple", "banana"}),
		FocusedInput{},
		PressedArrowKey{Direction: DirectionDown},
	)

	a := ToAria(cfg, st)
	assert.Equal(t, cfg.ItemElementID("apple"), a.Input["aria-activedescendant"])

	st = apply(cfg, st, PressedArrowKey{Direction: DirectionDown})
	a = ToAria(cfg, st)
	assert.Equal(t, cfg.ItemElementID("banana"), a.Input["aria-activedescendant"])
}

func TestAriaItemSelectionMarkers(t *testing.T) {
	cfg := testConfig()
	st := InitialState([]string{"apple", "banana"})

	// Without any selection, options carry no aria-selected at all.
	a := ToAria[string](cfg, st)
	require.Len(t, a.Items, 2)
	for _, item := range a.Items {
		assert.Equal(t, "option", item.Attributes["role"])
		_, ok := item.Attributes["aria-selected"]
		assert.False(t, ok)
	}

	st = apply(cfg, st, FocusedInput{}, ClickedItem[string]{Item: "banana"})
	a = ToAria(cfg, st)
	// Query is now "banana", filtering the list to the selection.
	require.Len(t, a.Items, 1)
	assert.Equal(t, "banana", a.Items[0].ItemID)
	assert.Equal(t, cfg.ItemElementID("banana"), a.Items[0].Attributes["id"])
	assert.Equal(t, "true", a.Items[0].Attributes["aria-selected"])
}

func TestAriaMultiSelect(t *testing.T) {
	cfg := multiConfig()
	st := apply(cfg, InitialState([]string{"apple", "banana", "cherry"}),
		FocusedInput{},
		ClickedItem[string]{Item: "cherry"},
	)

	a := ToAria(cfg, st)
	assert.Equal(t, "true", a.Input["aria-multiselectable"])
	require.Len(t, a.Items, 3)
	assert.Equal(t, "false", a.Items[0].Attributes["aria-selected"])
	assert.Equal(t, "false", a.Items[1].Attributes["aria-selected"])
	assert.Equal(t, "true", a.Items[2].Attributes["aria-selected"])
}

func TestAriaStaticElements(t *testing.T) {
	cfg := testConfig()
	a := ToAria(cfg, InitialState([]string{}))

	assert.Equal(t, AttributeSet{"id": cfg.HelperID()}, a.HelperText)
	assert.Equal(t, AttributeSet{"id": cfg.LabelID(), "for": cfg.InputID()}, a.Label)
	assert.Equal(t, "listbox", a.List["role"])
	assert.Equal(t, cfg.LabelID(), a.List["aria-labelledby"])
	assert.Empty(t, a.Items)
}

func TestElementIDsAreDeterministic(t *testing.T) {
	a := testConfig(WithNamespace[string]("ns"))
	b := testConfig(WithNamespace[string]("ns"))

	assert.Equal(t, a.InputID(), b.InputID())
	assert.Equal(t, a.ItemElementID("x"), b.ItemElementID("x"))
	assert.Equal(t, "ns-item-x", a.ItemElementID("x"))
	assert.Equal(t, "ns-chip-x", a.ChipID("x"))

	ids := []string{a.InputID(), a.LabelID(), a.HelperID(), a.ListID(),
		a.ItemElementID("x"), a.ChipID("x")}
	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate element id %s", id)
		seen[id] = true
	}
}
