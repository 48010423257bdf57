package combobox

// AttributeSet is an ordered-irrelevant set of accessibility attributes for
// one conceptual element. Keys are attribute names ("role",
// "aria-expanded", ...), values their string form. No markup types appear
// here; the host maps the sets onto whatever it renders.
type AttributeSet map[string]string

// ItemAttributes pairs one visible item's element id with its attributes.
type ItemAttributes struct {
	ItemID     string
	Attributes AttributeSet
}

// Aria is the accessibility projection of a state: one attribute set per
// conceptual element of the widget plus one per visible item.
type Aria struct {
	HelperText AttributeSet
	Label      AttributeSet
	Input      AttributeSet
	List       AttributeSet
	Items      []ItemAttributes
}

// ToAria derives accessibility attribute sets from the view projection.
// The input advertises the combobox role with aria-expanded tracking the
// open flag, aria-activedescendant referencing the highlighted item's
// element id when a highlight resolves, and aria-describedby referencing
// the helper text. The list is a listbox labelled by the input label; each
// item is an option carrying aria-selected only while a selection exists.
func ToAria[T any](cfg Config[T], st State[T]) Aria {
	vm := ToView(cfg, st)

	input := AttributeSet{
		"id":                cfg.InputID(),
		"role":              "combobox",
		"aria-haspopup":     "listbox",
		"aria-autocomplete": "list",
		"aria-controls":     cfg.ListID(),
		"aria-labelledby":   cfg.LabelID(),
		"aria-describedby":  cfg.HelperID(),
		"aria-expanded":     boolAttr(vm.IsOpened),
	}
	if vm.HighlightedItem != nil {
		input["aria-activedescendant"] = cfg.ItemElementID(cfg.ToItemID(*vm.HighlightedItem))
	}
	if cfg.Mode == ModeMulti {
		input["aria-multiselectable"] = "true"
	}

	a := Aria{
		HelperText: AttributeSet{"id": cfg.HelperID()},
		Label:      AttributeSet{"id": cfg.LabelID(), "for": cfg.InputID()},
		Input:      input,
		List: AttributeSet{
			"id":              cfg.ListID(),
			"role":            "listbox",
			"aria-labelledby": cfg.LabelID(),
		},
		Items: make([]ItemAttributes, 0, len(vm.VisibleItems)),
	}

	hasSelection := len(vm.SelectedItems) > 0
	for _, item := range vm.VisibleItems {
		id := cfg.ToItemID(item)
		attrs := AttributeSet{
			"id":   cfg.ItemElementID(id),
			"role": "option",
		}
		if hasSelection {
			attrs["aria-selected"] = boolAttr(selectionIndexByID(cfg, vm.SelectedItems, id) >= 0)
		}
		a.Items = append(a.Items, ItemAttributes{ItemID: id, Attributes: attrs})
	}
	return a
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
