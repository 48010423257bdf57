// Package store defines the item-store collaborator the combobox engine
// pairs with when item collections are too large to hold in state, plus an
// in-memory reference implementation. A host searches the store, feeds the
// resulting page into the engine as the current item window, and the
// reducer then treats that window's length as the visible list length.
package store

import "context"

// Page selects one window of search results. The zero value means the
// first page with the default size.
type Page struct {
	// Number is the zero-based page index.
	Number int
	// Size is the maximum number of items per page; 0 uses DefaultPageSize.
	Size int
}

// DefaultPageSize bounds a search when the caller does not set Page.Size.
const DefaultPageSize = 50

// SearchResult is one page of matches.
type SearchResult[T any] struct {
	// Items is the matching window in collection order.
	Items []T
	// Total counts all matches across pages.
	Total int
	// Page echoes the effective page used for the query.
	Page Page
	// HasMore reports whether pages follow this one.
	HasMore bool
}

// Store is the lookup+search capability backing a combobox host.
// Implementations must be safe for concurrent use; any latency-bearing
// work (remote indexes, databases) lives entirely behind this interface,
// and the host serializes results back into the engine as events.
type Store[T any] interface {
	// GetByID returns the item with the given id, if present.
	GetByID(ctx context.Context, id string) (T, bool, error)

	// GetIndex returns the item's position in collection order, if present.
	GetIndex(ctx context.Context, id string) (int, bool, error)

	// Search returns the page of items whose display text contains query
	// as a case-sensitive substring, preserving collection order. An empty
	// query matches everything.
	Search(ctx context.Context, query string, page Page) (SearchResult[T], error)
}

// normalizePage applies the default size and clamps negatives.
func normalizePage(p Page) Page {
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Number < 0 {
		p.Number = 0
	}
	return p
}

// window slices [offset, offset+size) out of n, returning the bounds.
func window(n, number, size int) (int, int) {
	start := number * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}
	return start, end
}
