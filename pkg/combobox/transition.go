package combobox

// Result is what a transition produces: the next state plus zero or more
// effects for the host to execute and discard.
type Result[T any] struct {
	State   State[T]
	Effects []Effect
}

// Transition is the reducer at the heart of the engine. It consumes the
// current state and one event and returns the next state and effects. It is
// pure and stateless between calls; the host owns the state value and
// threads it back in.
//
// Every (state, event) pair has a defined outcome. Pairs the tables below
// do not give a meaning are explicit no-ops: the state is returned
// unchanged with no effects, never a panic. A highlighted result whose
// index no longer resolves against the current filtered list is clamped
// into range, or opened without a highlight when nothing is visible, so
// the highlight invariant holds on every output.
func Transition[T any](cfg Config[T], st State[T], ev Event) Result[T] {
	res := transition(cfg, st, ev)
	res.State = clampHighlight(cfg, res.State)
	Trace(cfg.logger, st, ev, res)
	return res
}

func transition[T any](cfg Config[T], st State[T], ev Event) Result[T] {
	// Events whose handling does not depend on the state variant.
	switch e := ev.(type) {
	case ItemsLoaded[T]:
		return Result[T]{State: SetItems(cfg, st, e.Items)}
	case SearchFailed:
		return unchanged(st)
	case UnselectedItem:
		return unselect(cfg, st, e.ID)
	}

	switch s := st.(type) {
	case Blurred[T]:
		return transitionBlurred(cfg, s, ev)
	case FocusedClosed[T]:
		return transitionFocusedClosed(cfg, s, ev)
	case FocusedOpened[T]:
		return transitionFocusedOpened(cfg, s, ev)
	case FocusedOpenedHighlighted[T]:
		return transitionHighlighted(cfg, s, ev)
	case ChipFocused[T]:
		return transitionChipFocused(cfg, s, ev)
	default:
		// Unknown state implementations are left untouched.
		return unchanged(st)
	}
}

func unchanged[T any](st State[T]) Result[T] {
	return Result[T]{State: st}
}

func transitionBlurred[T any](cfg Config[T], s Blurred[T], ev Event) Result[T] {
	switch ev.(type) {
	case FocusedInput:
		// Opening always accompanies first focus. With a single-select
		// selection the query re-seeds from its display value.
		sh := s.Shared
		if cfg.Mode == ModeSingle && len(sh.Selected) > 0 {
			sh.Query = cfg.ToItemInputValue(sh.Selected[0])
		}
		return Result[T]{State: FocusedOpened[T]{sh}}
	default:
		return unchanged[T](s)
	}
}

func transitionFocusedClosed[T any](cfg Config[T], s FocusedClosed[T], ev Event) Result[T] {
	switch e := ev.(type) {
	case InputtedQuery:
		sh := s.Shared
		sh.Query = e.Query
		return Result[T]{State: FocusedOpened[T]{sh}}
	case PressedArrowKey:
		// Arrows on a closed list open it and seed the highlight.
		return enterHighlight(cfg, s.Shared, e.Direction)
	case PressedEscapeKey:
		return unchanged[T](s)
	case BlurredInput:
		return blur(cfg, s.Shared)
	case ClickedItem[T]:
		return clickItem(cfg, s.Shared, e.Item)
	case FocusedSelectedItem:
		return focusChip(cfg, s.Shared, e.Index)
	default:
		return unchanged[T](s)
	}
}

func transitionFocusedOpened[T any](cfg Config[T], s FocusedOpened[T], ev Event) Result[T] {
	switch e := ev.(type) {
	case InputtedQuery:
		sh := s.Shared
		sh.Query = e.Query
		return Result[T]{State: FocusedOpened[T]{sh}}
	case PressedArrowKey:
		return enterHighlight(cfg, s.Shared, e.Direction)
	case PressedEscapeKey:
		return Result[T]{State: FocusedClosed[T]{s.Shared}}
	case BlurredInput:
		return blur(cfg, s.Shared)
	case ClickedItem[T]:
		return clickItem(cfg, s.Shared, e.Item)
	case FocusedSelectedItem:
		return focusChip(cfg, s.Shared, e.Index)
	default:
		return unchanged[T](s)
	}
}

func transitionHighlighted[T any](cfg Config[T], s FocusedOpenedHighlighted[T], ev Event) Result[T] {
	switch e := ev.(type) {
	case InputtedQuery:
		// A query change invalidates the highlight: the index was computed
		// against the previous filtered set.
		sh := s.Shared
		sh.Query = e.Query
		return Result[T]{State: FocusedOpened[T]{sh}}
	case PressedArrowKey:
		return moveHighlight(cfg, s, e.Direction)
	case PressedEnterKey:
		return confirmHighlight(cfg, s)
	case PressedEscapeKey:
		return Result[T]{State: FocusedClosed[T]{s.Shared}}
	case BlurredInput:
		return blur(cfg, s.Shared)
	case ClickedItem[T]:
		return clickItem(cfg, s.Shared, e.Item)
	case FocusedSelectedItem:
		return focusChip(cfg, s.Shared, e.Index)
	default:
		return unchanged[T](s)
	}
}

func transitionChipFocused[T any](cfg Config[T], s ChipFocused[T], ev Event) Result[T] {
	switch e := ev.(type) {
	case BlurredSelectedItem, FocusedInput, PressedEscapeKey, PressedArrowKey:
		// Chip focus hands back to the input; arrows do not navigate chips.
		return Result[T]{
			State:   FocusedClosed[T]{s.Shared},
			Effects: []Effect{FocusInput{ID: cfg.InputID()}},
		}
	case FocusedSelectedItem:
		return focusChip(cfg, s.Shared, e.Index)
	case PressedEnterKey:
		// Enter removes the focused chip.
		if s.Chip < 0 || s.Chip >= len(s.Selected) {
			return unchanged[T](s)
		}
		return unselect[T](cfg, s, cfg.ToItemID(s.Selected[s.Chip]))
	case InputtedQuery:
		sh := s.Shared
		sh.Query = e.Query
		return Result[T]{State: FocusedOpened[T]{sh}}
	case ClickedItem[T]:
		return clickItem(cfg, s.Shared, e.Item)
	case BlurredInput:
		return blur(cfg, s.Shared)
	default:
		return unchanged[T](s)
	}
}

// clampHighlight restores the highlight invariant on a state carrying a
// stale index, e.g. after the item collection or query changed underneath
// it. Non-highlighted states pass through untouched.
func clampHighlight[T any](cfg Config[T], st State[T]) State[T] {
	hl, ok := st.(FocusedOpenedHighlighted[T])
	if !ok {
		return st
	}
	n := len(cfg.Filter(hl.Items, hl.Query))
	if n == 0 {
		return FocusedOpened[T]{hl.Shared}
	}
	if hl.Index < 0 {
		hl.Index = 0
	}
	if hl.Index >= n {
		hl.Index = n - 1
	}
	return hl
}

// circularIndex wraps i into [0, n) without ever failing: a zero-length
// list yields 0, which callers must treat as "no highlight" when rendering.
func circularIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// enterHighlight seeds a highlight on a list that has none. Down starts at
// the top, up at the bottom, except that a single-select selection visible
// in the filtered list wins over the top for down.
func enterHighlight[T any](cfg Config[T], sh Shared[T], dir Direction) Result[T] {
	filtered := cfg.Filter(sh.Items, sh.Query)
	n := len(filtered)
	if n == 0 {
		return Result[T]{State: FocusedOpened[T]{sh}}
	}
	idx := 0
	if dir == DirectionUp {
		idx = n - 1
	} else if cfg.Mode == ModeSingle && len(sh.Selected) > 0 {
		if i := itemIndexByID(cfg, filtered, cfg.ToItemID(sh.Selected[0])); i >= 0 {
			idx = i
		}
	}
	return Result[T]{
		State:   FocusedOpenedHighlighted[T]{Shared: sh, Index: idx},
		Effects: []Effect{scrollTo(cfg, filtered, idx)},
	}
}

// moveHighlight advances an existing highlight one step circularly.
func moveHighlight[T any](cfg Config[T], s FocusedOpenedHighlighted[T], dir Direction) Result[T] {
	filtered := cfg.Filter(s.Items, s.Query)
	n := len(filtered)
	if n == 0 {
		return Result[T]{State: FocusedOpened[T]{s.Shared}}
	}
	step := 1
	if dir == DirectionUp {
		step = -1
	}
	idx := circularIndex(s.Index+step, n)
	return Result[T]{
		State:   FocusedOpenedHighlighted[T]{Shared: s.Shared, Index: idx},
		Effects: []Effect{scrollTo(cfg, filtered, idx)},
	}
}

// confirmHighlight commits the highlighted item. An index that no longer
// resolves (the filtered list shrank under the highlight) collapses to the
// closed state with the selection untouched.
func confirmHighlight[T any](cfg Config[T], s FocusedOpenedHighlighted[T]) Result[T] {
	filtered := cfg.Filter(s.Items, s.Query)
	if s.Index < 0 || s.Index >= len(filtered) {
		return Result[T]{State: FocusedClosed[T]{s.Shared}}
	}
	res := selectItem(cfg, s.Shared, filtered[s.Index])
	// Multi select keeps the list open after a toggle; keep the highlight
	// too, so successive enters walk successive items instead of toggling
	// the first one on and off.
	if opened, ok := res.State.(FocusedOpened[T]); ok {
		res.State = FocusedOpenedHighlighted[T]{Shared: opened.Shared, Index: s.Index}
	}
	return res
}

// clickItem commits a pointer selection. The clicked item wins regardless
// of any highlight; focus returns to the input.
func clickItem[T any](cfg Config[T], sh Shared[T], item T) Result[T] {
	res := selectItem(cfg, sh, item)
	res.Effects = append(res.Effects, FocusInput{ID: cfg.InputID()})
	return res
}

// selectItem applies mode semantics: replace-and-close for single select,
// toggle-and-stay-open for multi select.
func selectItem[T any](cfg Config[T], sh Shared[T], item T) Result[T] {
	id := cfg.ToItemID(item)
	if cfg.Mode == ModeMulti {
		if i := selectionIndexByID(cfg, sh.Selected, id); i >= 0 {
			sh.Selected = append(append([]T{}, sh.Selected[:i]...), sh.Selected[i+1:]...)
		} else {
			sh.Selected = append(append([]T{}, sh.Selected...), item)
		}
		return Result[T]{State: FocusedOpened[T]{sh}}
	}
	sh.Selected = []T{item}
	sh.Query = cfg.ToItemInputValue(item)
	return Result[T]{State: FocusedClosed[T]{sh}}
}

// unselect removes a selection entry by id from any state. Removing the id
// a focused chip points at moves chip focus to the nearest remaining chip,
// or back to the input when none remain.
func unselect[T any](cfg Config[T], st State[T], id string) Result[T] {
	sh := st.shared()
	i := selectionIndexByID(cfg, sh.Selected, id)
	if i < 0 {
		return unchanged(st)
	}
	sh.Selected = append(append([]T{}, sh.Selected[:i]...), sh.Selected[i+1:]...)

	chip, ok := st.(ChipFocused[T])
	if !ok {
		return Result[T]{State: st.withShared(sh)}
	}
	if len(sh.Selected) == 0 {
		return Result[T]{
			State:   FocusedClosed[T]{sh},
			Effects: []Effect{FocusInput{ID: cfg.InputID()}},
		}
	}
	next := chip.Chip
	if i < next {
		next--
	}
	if next >= len(sh.Selected) {
		next = len(sh.Selected) - 1
	}
	if next < 0 {
		next = 0
	}
	return Result[T]{
		State:   ChipFocused[T]{Shared: sh, Chip: next},
		Effects: []Effect{FocusChip{ID: cfg.ChipID(cfg.ToItemID(sh.Selected[next])), Index: next}},
	}
}

// focusChip moves focus onto a selected-item chip (multi-select only).
func focusChip[T any](cfg Config[T], sh Shared[T], index int) Result[T] {
	if cfg.Mode != ModeMulti || len(sh.Selected) == 0 {
		return Result[T]{State: FocusedClosed[T]{sh}}
	}
	if index < 0 {
		index = 0
	}
	if index >= len(sh.Selected) {
		index = len(sh.Selected) - 1
	}
	return Result[T]{
		State:   ChipFocused[T]{Shared: sh, Chip: index},
		Effects: []Effect{FocusChip{ID: cfg.ChipID(cfg.ToItemID(sh.Selected[index])), Index: index}},
	}
}

// blur collapses any focused state. With a single-select selection the
// query resets to its display value; a multi-select query clears, the
// chips being the single source of truth for what is chosen.
func blur[T any](cfg Config[T], sh Shared[T]) Result[T] {
	switch {
	case cfg.Mode == ModeSingle && len(sh.Selected) > 0:
		sh.Query = cfg.ToItemInputValue(sh.Selected[0])
	case cfg.Mode == ModeMulti:
		sh.Query = ""
	}
	return Result[T]{State: Blurred[T]{sh}}
}

func scrollTo[T any](cfg Config[T], filtered []T, idx int) Effect {
	return ScrollIntoView{ID: cfg.ItemElementID(cfg.ToItemID(filtered[idx]))}
}

func itemIndexByID[T any](cfg Config[T], items []T, id string) int {
	for i, item := range items {
		if cfg.ToItemID(item) == id {
			return i
		}
	}
	return -1
}
