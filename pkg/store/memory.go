package store

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-memory Store backed by an ordered slice with an id
// index. Suited to collections small enough to hold resident; larger
// datasets belong behind a database-backed implementation of the same
// interface.
type Memory[T any] struct {
	mu      sync.RWMutex
	items   []T
	index   map[string]int
	id      func(T) string
	display func(T) string
}

// NewMemory builds an in-memory store over items, using the same id and
// display projections the engine config carries. Later duplicates of an id
// are ignored; the first occurrence wins.
func NewMemory[T any](items []T, id, display func(T) string) *Memory[T] {
	m := &Memory[T]{
		index:   make(map[string]int, len(items)),
		id:      id,
		display: display,
	}
	for _, item := range items {
		key := id(item)
		if _, dup := m.index[key]; dup {
			continue
		}
		m.index[key] = len(m.items)
		m.items = append(m.items, item)
	}
	return m
}

// Len returns the number of stored items.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// GetByID returns the item with the given id, if present.
func (m *Memory[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	if !ok {
		return zero, false, nil
	}
	return m.items[i], true, nil
}

// GetIndex returns the item's position in collection order, if present.
func (m *Memory[T]) GetIndex(ctx context.Context, id string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	return i, ok, nil
}

// Search returns the page of items whose display text contains query,
// preserving collection order.
func (m *Memory[T]) Search(ctx context.Context, query string, page Page) (SearchResult[T], error) {
	if err := ctx.Err(); err != nil {
		return SearchResult[T]{}, err
	}
	page = normalizePage(page)

	m.mu.RLock()
	var matches []T
	if query == "" {
		matches = append(matches, m.items...)
	} else {
		for _, item := range m.items {
			if strings.Contains(m.display(item), query) {
				matches = append(matches, item)
			}
		}
	}
	m.mu.RUnlock()

	start, end := window(len(matches), page.Number, page.Size)
	return SearchResult[T]{
		Items:   matches[start:end],
		Total:   len(matches),
		Page:    page,
		HasMore: end < len(matches),
	}, nil
}
