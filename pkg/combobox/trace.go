package combobox

import "github.com/go-logr/logr"

// Trace records one transition on a structured logging sink. It is pure
// observation: it never influences computed results, and hosts that do not
// configure a logger pay nothing because the default sink discards.
func Trace[T any](lgr logr.Logger, prev State[T], ev Event, res Result[T]) {
	if !lgr.V(1).Enabled() {
		return
	}
	effects := make([]string, 0, len(res.Effects))
	for _, ef := range res.Effects {
		effects = append(effects, EffectName(ef))
	}
	lgr.V(1).Info("transition",
		"from", prev.Name(),
		"event", EventName(ev),
		"to", res.State.Name(),
		"query", Query(res.State),
		"selected", len(SelectedItems(res.State)),
		"effects", effects,
	)
}
