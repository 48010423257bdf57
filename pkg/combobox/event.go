package combobox

// Event is the closed vocabulary of interaction events the reducer
// understands. Hosts translate raw input (key names, pointer clicks,
// focus changes, asynchronous store results) into these values and feed
// them through Transition one at a time.
type Event interface {
	eventName() string
}

// Direction of keyboard list navigation.
type Direction int

const (
	// DirectionDown moves the highlight toward the end of the list.
	DirectionDown Direction = iota
	// DirectionUp moves the highlight toward the start of the list.
	DirectionUp
)

// FocusedInput reports that the text input gained focus.
type FocusedInput struct{}

// BlurredInput reports that the widget lost focus entirely.
type BlurredInput struct{}

// InputtedQuery reports that the input text changed. Query is the full new
// value, not a delta.
type InputtedQuery struct {
	Query string
}

// PressedArrowKey reports an up or down arrow press while the input has
// focus.
type PressedArrowKey struct {
	Direction Direction
}

// PressedEnterKey reports an enter press, confirming the highlighted item.
type PressedEnterKey struct{}

// PressedEscapeKey reports an escape press, collapsing the list.
type PressedEscapeKey struct{}

// ClickedItem reports a pointer selection of a visible item. In
// single-select mode the item replaces the selection; in multi-select mode
// it toggles membership.
type ClickedItem[T any] struct {
	Item T
}

// UnselectedItem removes an item from a multi-select selection by id, e.g.
// via a chip's remove affordance.
type UnselectedItem struct {
	ID string
}

// FocusedSelectedItem reports that a selected-item chip gained focus
// (multi-select only). Index points into the selection order.
type FocusedSelectedItem struct {
	Index int
}

// BlurredSelectedItem reports that chip focus returned to the input.
type BlurredSelectedItem struct{}

// ItemsLoaded carries an asynchronous item-store result the host has
// serialized back into the event stream.
type ItemsLoaded[T any] struct {
	Items []T
}

// SearchFailed reports an item-store failure. The reducer treats it as
// "no items changed" and preserves the current state.
type SearchFailed struct{}

func (FocusedInput) eventName() string        { return "focused-input" }
func (BlurredInput) eventName() string        { return "blurred-input" }
func (InputtedQuery) eventName() string       { return "inputted-query" }
func (PressedArrowKey) eventName() string     { return "pressed-arrow-key" }
func (PressedEnterKey) eventName() string     { return "pressed-enter-key" }
func (PressedEscapeKey) eventName() string    { return "pressed-escape-key" }
func (ClickedItem[T]) eventName() string      { return "clicked-item" }
func (UnselectedItem) eventName() string      { return "unselected-item" }
func (FocusedSelectedItem) eventName() string { return "focused-selected-item" }
func (BlurredSelectedItem) eventName() string { return "blurred-selected-item" }
func (ItemsLoaded[T]) eventName() string      { return "items-loaded" }
func (SearchFailed) eventName() string        { return "search-failed" }

// EventName returns the wire-style name of an event, for tracing.
func EventName(ev Event) string {
	if ev == nil {
		return "none"
	}
	return ev.eventName()
}
