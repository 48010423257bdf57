package combobox

// Effect is a declarative side-effect intent emitted alongside a state
// transition. Effects are fire-and-forget: the host executes them
// immediately and discards them, and the reducer never learns whether one
// succeeded. Element ids refer to the deterministic identifiers generated
// from the configured namespace.
type Effect interface {
	effectName() string
}

// FocusInput asks the host to move focus to the text input.
type FocusInput struct {
	ID string
}

// FocusChip asks the host to move focus to a selected-item chip.
type FocusChip struct {
	ID    string
	Index int
}

// ScrollIntoView asks the host to scroll an item element into view.
type ScrollIntoView struct {
	ID string
}

func (FocusInput) effectName() string     { return "focus-input" }
func (FocusChip) effectName() string      { return "focus-chip" }
func (ScrollIntoView) effectName() string { return "scroll-into-view" }

// EffectName returns the wire-style name of an effect, for tracing.
func EffectName(ef Effect) string {
	if ef == nil {
		return "none"
	}
	return ef.effectName()
}
