package combobox

// State is the closed set of interaction states. Exactly five variants
// implement it: Blurred, FocusedClosed, FocusedOpened,
// FocusedOpenedHighlighted, and ChipFocused. Unreachable axis combinations
// (a blurred widget with an open list, a highlighted closed list) are
// unrepresentable by construction.
//
// Every variant carries the full item collection, the ordered selection,
// and the current query. The query persists while blurred; when a selection
// exists, blur resets it to the selection's display value so there is a
// single source of truth for the input text.
type State[T any] interface {
	// Name returns the variant name, used by projections and tracing.
	Name() string

	shared() Shared[T]
	withShared(Shared[T]) State[T]
}

// Shared is the model data every state variant carries: the full item
// collection, the ordered selection (at most one entry in single-select
// mode, click order in multi-select), and the current query string.
type Shared[T any] struct {
	Items    []T
	Selected []T
	Query    string
}

// Blurred is the resting state: input not focused, list closed.
type Blurred[T any] struct {
	Shared[T]
}

// FocusedClosed has input focus with the suggestion list collapsed.
type FocusedClosed[T any] struct {
	Shared[T]
}

// FocusedOpened has input focus and an open suggestion list with no
// keyboard highlight.
type FocusedOpened[T any] struct {
	Shared[T]
}

// FocusedOpenedHighlighted has an open list and a keyboard highlight.
// Index points into the list filtered by the current query; it is only
// meaningful against that filtered set and is re-derived or dropped
// whenever the query changes.
type FocusedOpenedHighlighted[T any] struct {
	Shared[T]
	Index int
}

// ChipFocused is reachable only in multi-select mode: one selected-item
// chip holds focus, mutually exclusive with input focus. Chip indexes the
// Selected slice. The list is closed while a chip has focus.
type ChipFocused[T any] struct {
	Shared[T]
	Chip int
}

func (s Blurred[T]) Name() string                  { return "blurred" }
func (s FocusedClosed[T]) Name() string            { return "focused-closed" }
func (s FocusedOpened[T]) Name() string            { return "focused-opened" }
func (s FocusedOpenedHighlighted[T]) Name() string { return "focused-opened-highlighted" }
func (s ChipFocused[T]) Name() string              { return "chip-focused" }

func (s Blurred[T]) shared() Shared[T]                  { return s.Shared }
func (s FocusedClosed[T]) shared() Shared[T]            { return s.Shared }
func (s FocusedOpened[T]) shared() Shared[T]            { return s.Shared }
func (s FocusedOpenedHighlighted[T]) shared() Shared[T] { return s.Shared }
func (s ChipFocused[T]) shared() Shared[T]              { return s.Shared }

func (s Blurred[T]) withShared(sh Shared[T]) State[T]       { s.Shared = sh; return s }
func (s FocusedClosed[T]) withShared(sh Shared[T]) State[T] { s.Shared = sh; return s }
func (s FocusedOpened[T]) withShared(sh Shared[T]) State[T] { s.Shared = sh; return s }
func (s FocusedOpenedHighlighted[T]) withShared(sh Shared[T]) State[T] {
	s.Shared = sh
	return s
}
func (s ChipFocused[T]) withShared(sh Shared[T]) State[T] { s.Shared = sh; return s }

// InitialState returns the resting state for a fresh widget: blurred,
// unselected, empty query.
func InitialState[T any](items []T) State[T] {
	return Blurred[T]{Shared[T]{Items: items}}
}

// SetItems replaces the item collection on any state, for hosts that feed
// asynchronous store results back into the engine. A highlight that no
// longer resolves against the new filtered set is clamped into range, or
// dropped when the filtered set is empty.
func SetItems[T any](cfg Config[T], st State[T], items []T) State[T] {
	sh := st.shared()
	sh.Items = items
	return clampHighlight(cfg, st.withShared(sh))
}

// Items returns the full item collection carried by the state.
func Items[T any](st State[T]) []T { return st.shared().Items }

// Query returns the current query string carried by the state.
func Query[T any](st State[T]) string { return st.shared().Query }

// SelectedItems returns the ordered selection carried by the state.
func SelectedItems[T any](st State[T]) []T { return st.shared().Selected }

// IsOpened reports whether the state variant has an open suggestion list.
func IsOpened[T any](st State[T]) bool {
	switch st.(type) {
	case FocusedOpened[T], FocusedOpenedHighlighted[T]:
		return true
	default:
		return false
	}
}

// IsFocused reports whether the input holds focus in this state. A focused
// chip counts as widget focus but not input focus.
func IsFocused[T any](st State[T]) bool {
	switch st.(type) {
	case FocusedClosed[T], FocusedOpened[T], FocusedOpenedHighlighted[T]:
		return true
	default:
		return false
	}
}

// HighlightIndex returns the highlight index and whether one is present.
func HighlightIndex[T any](st State[T]) (int, bool) {
	if hl, ok := st.(FocusedOpenedHighlighted[T]); ok {
		return hl.Index, true
	}
	return 0, false
}

// selectionIndexByID returns the position of id in the selection, or -1.
func selectionIndexByID[T any](cfg Config[T], selected []T, id string) int {
	for i, item := range selected {
		if cfg.ToItemID(item) == id {
			return i
		}
	}
	return -1
}
