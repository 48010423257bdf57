package combobox

// ItemStatus classifies one visible item for rendering.
type ItemStatus int

const (
	// StatusNone marks an item that is neither highlighted nor selected.
	StatusNone ItemStatus = iota
	// StatusHighlighted marks the keyboard highlight.
	StatusHighlighted
	// StatusSelected marks a committed selection.
	StatusSelected
	// StatusSelectedAndHighlighted marks an item that is both.
	StatusSelectedAndHighlighted
)

func (s ItemStatus) String() string {
	switch s {
	case StatusHighlighted:
		return "highlighted"
	case StatusSelected:
		return "selected"
	case StatusSelectedAndHighlighted:
		return "selected-and-highlighted"
	default:
		return "none"
	}
}

// ViewModel is the render-ready projection of a state. It is derived on
// demand and never stored; the view layer reads it and throws it away.
type ViewModel[T any] struct {
	Query        string
	IsOpened     bool
	VisibleItems []T
	// Statuses classifies VisibleItems positionally.
	Statuses []ItemStatus
	// HighlightedItem is nil unless a highlight index is present and
	// resolves against the visible list.
	HighlightedItem *T
	// SelectedItems is the committed selection in order; in single-select
	// mode it holds at most one entry.
	SelectedItems []T
}

// ToView derives the view model for a state. VisibleItems is the filtered
// item list for the current query; per-item status compares each candidate's
// id against the highlighted and selected identities.
func ToView[T any](cfg Config[T], st State[T]) ViewModel[T] {
	sh := st.shared()
	visible := cfg.Filter(sh.Items, sh.Query)

	vm := ViewModel[T]{
		Query:         sh.Query,
		IsOpened:      IsOpened(st),
		VisibleItems:  visible,
		Statuses:      make([]ItemStatus, len(visible)),
		SelectedItems: append([]T{}, sh.Selected...),
	}

	highlightID := ""
	if idx, ok := HighlightIndex(st); ok && idx >= 0 && idx < len(visible) {
		item := visible[idx]
		vm.HighlightedItem = &item
		highlightID = cfg.ToItemID(item)
	}

	for i, item := range visible {
		id := cfg.ToItemID(item)
		selected := selectionIndexByID(cfg, sh.Selected, id) >= 0
		highlighted := highlightID != "" && id == highlightID
		switch {
		case selected && highlighted:
			vm.Statuses[i] = StatusSelectedAndHighlighted
		case highlighted:
			vm.Statuses[i] = StatusHighlighted
		case selected:
			vm.Statuses[i] = StatusSelected
		}
	}
	return vm
}
