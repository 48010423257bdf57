// Package combobox implements a headless interaction engine for
// autocomplete/combobox widgets. It models the widget as a pure state
// machine: the host feeds interaction events through Transition, stores
// the returned state, executes the returned effects, and derives render
// data on demand via ToView and ToAria. No rendering technology appears
// in this package.
package combobox

import (
	"strings"

	"github.com/go-logr/logr"
)

// Mode selects between single-select and multi-select semantics.
type Mode string

const (
	// ModeSingle keeps at most one selected item; selecting replaces.
	ModeSingle Mode = "single"
	// ModeMulti keeps an ordered selection set; selecting toggles.
	ModeMulti Mode = "multi"
)

// DefaultNamespace is used for generated element identifiers when no
// namespace is configured.
const DefaultNamespace = "combox"

// FilterFunc decides the visible subset of items for a query. It must be
// pure and preserve the input order.
type FilterFunc[T any] func(items []T, query string) []T

// Config carries the item projections and identifier namespace for one
// widget instance. It is immutable after construction; every pure function
// in this package takes it explicitly rather than capturing it.
//
// ToItemID must be deterministic and collision-free over the active item
// collection. Duplicate ids corrupt identity-based highlight and selection
// matching but never crash; this is documented undefined-result behavior.
type Config[T any] struct {
	ToItemID         func(T) string
	ToItemInputValue func(T) string
	Namespace        string
	Mode             Mode

	filter FilterFunc[T]
	logger logr.Logger
}

// Option configures a Config.
type Option[T any] func(*Config[T])

// WithNamespace sets the identifier namespace for generated element ids.
func WithNamespace[T any](ns string) Option[T] {
	return func(c *Config[T]) {
		if ns != "" {
			c.Namespace = ns
		}
	}
}

// WithMode sets single or multi select semantics.
func WithMode[T any](mode Mode) Option[T] {
	return func(c *Config[T]) {
		if mode == ModeSingle || mode == ModeMulti {
			c.Mode = mode
		}
	}
}

// WithFilter replaces the default case-sensitive substring filter, e.g. to
// delegate matching to an external item store.
func WithFilter[T any](fn FilterFunc[T]) Option[T] {
	return func(c *Config[T]) {
		if fn != nil {
			c.filter = fn
		}
	}
}

// WithLogger sets the trace sink invoked by Trace. Defaults to a discard
// logger; tracing never affects computed results.
func WithLogger[T any](lgr logr.Logger) Option[T] {
	return func(c *Config[T]) {
		c.logger = lgr
	}
}

// NewConfig builds a Config from the two item projections. toItemID maps an
// item to its stable identity; toItemInputValue maps it to its display text,
// which is also the default filter key.
func NewConfig[T any](toItemID, toItemInputValue func(T) string, opts ...Option[T]) Config[T] {
	cfg := Config[T]{
		ToItemID:         toItemID,
		ToItemInputValue: toItemInputValue,
		Namespace:        DefaultNamespace,
		Mode:             ModeSingle,
		logger:           logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Filter returns the visible subset of items for the query, preserving the
// input order. The default policy is case-sensitive substring containment
// against ToItemInputValue; an empty query yields all items.
func (c Config[T]) Filter(items []T, query string) []T {
	if c.filter != nil {
		return c.filter(items, query)
	}
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(c.ToItemInputValue(item), query) {
			out = append(out, item)
		}
	}
	return out
}

// Generated element identifiers. All ids are deterministic functions of the
// namespace (and the item id for ItemElementID) so label/describe/owns
// relationships stay stable and collision-free per widget instance.

// InputID returns the element id of the text input.
func (c Config[T]) InputID() string { return c.Namespace + "-input" }

// LabelID returns the element id of the input label.
func (c Config[T]) LabelID() string { return c.Namespace + "-label" }

// HelperID returns the element id of the helper text.
func (c Config[T]) HelperID() string { return c.Namespace + "-helper" }

// ListID returns the element id of the suggestion list container.
func (c Config[T]) ListID() string { return c.Namespace + "-list" }

// ItemElementID returns the element id of a rendered item.
func (c Config[T]) ItemElementID(itemID string) string {
	return c.Namespace + "-item-" + itemID
}

// ChipID returns the element id of a selected-item chip in multi-select mode.
func (c Config[T]) ChipID(itemID string) string {
	return c.Namespace + "-chip-" + itemID
}
