package combobox

// KeyBinding is one entry of the key-to-event mapping table.
type KeyBinding struct {
	Event Event
	// PreventDefault tells the host to suppress the default browser or
	// terminal behavior for this key.
	PreventDefault bool
}

// keyBindings maps raw key names to interaction events. Unrecognized keys
// map to no event; printable and editing keys are resolved by the host,
// which knows the resulting input value (see EventForKey).
var keyBindings = map[string]KeyBinding{
	"ArrowDown": {Event: PressedArrowKey{Direction: DirectionDown}, PreventDefault: true},
	"ArrowUp":   {Event: PressedArrowKey{Direction: DirectionUp}, PreventDefault: true},
	"Enter":     {Event: PressedEnterKey{}, PreventDefault: true},
	"Escape":    {Event: PressedEscapeKey{}},
	// Terminal-style aliases used by TUI hosts.
	"down":  {Event: PressedArrowKey{Direction: DirectionDown}, PreventDefault: true},
	"up":    {Event: PressedArrowKey{Direction: DirectionUp}, PreventDefault: true},
	"enter": {Event: PressedEnterKey{}, PreventDefault: true},
	"esc":   {Event: PressedEscapeKey{}},
}

// EventForKey translates a raw key name into an interaction event. The
// second return reports whether the host should suppress the key's default
// behavior. An unrecognized key yields (nil, false): either the key edits
// the input text, in which case the host follows up with an InputtedQuery
// carrying the new value, or it means nothing to the widget.
func EventForKey(key string) (Event, bool) {
	b, ok := keyBindings[key]
	if !ok {
		return nil, false
	}
	return b.Event, b.PreventDefault
}
