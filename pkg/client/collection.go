package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// Collection owns the loaded state for one filtered resource list: the
// current items, the last error, and the base filters every Load starts from.
// All methods are safe for concurrent use.
type Collection[T any] struct {
	svc  *Service[T]
	idOf func(T) string

	mu      sync.Mutex
	filters Filters
	data    []T
	meta    ListMeta
	lastErr error
	loading bool

	// generation tags each Load; stale completions are discarded so the
	// latest filters always win.
	generation uint64
}

func NewCollection[T any](svc *Service[T], base Filters, idOf func(T) string) *Collection[T] {
	return &Collection[T]{svc: svc, idOf: idOf, filters: base, data: []T{}}
}

// Load fetches the list for the base filters merged with overrides and
// replaces the collection wholesale. A missing company id short-circuits to
// an empty list without touching the network. Overlapping loads resolve
// latest-filters-win: a completion belonging to a superseded call is dropped.
func (c *Collection[T]) Load(ctx context.Context, overrides Filters) error {
	c.mu.Lock()
	merged := c.filters.Merge(overrides)
	c.generation++
	gen := c.generation
	c.loading = true

	if merged.CompanyID == "" {
		c.data = []T{}
		c.meta = ListMeta{}
		c.lastErr = nil
		c.loading = false
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	items, meta, err := c.svc.List(ctx, merged)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// A newer Load superseded this one while it was in flight.
		return nil
	}
	c.loading = false
	if err != nil {
		c.data = []T{}
		c.meta = ListMeta{}
		c.lastErr = err
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.data = items
	c.meta = meta
	c.lastErr = nil
	return nil
}

// Create posts the payload and appends the result to the tail of the loaded
// list, leaving sort order to the next Load.
func (c *Collection[T]) Create(ctx context.Context, payload any) (T, error) {
	created, err := c.svc.Create(ctx, payload)
	if err != nil {
		var zero T
		c.setErr(err)
		return zero, err
	}

	c.mu.Lock()
	c.data = append(c.data, created)
	c.lastErr = nil
	c.mu.Unlock()
	return created, nil
}

// Update patches the record and replaces the matching element in place.
func (c *Collection[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	updated, err := c.svc.Update(ctx, id, patch)
	if err != nil {
		var zero T
		c.setErr(err)
		return zero, err
	}

	c.mu.Lock()
	for i, e := range c.data {
		if c.idOf(e) == id {
			c.data[i] = updated
			break
		}
	}
	c.lastErr = nil
	c.mu.Unlock()
	return updated, nil
}

// Delete removes the record. Deleting an id that is already gone reports
// (false, nil) and leaves the loaded list unchanged.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	if err := c.svc.Delete(ctx, id); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		c.setErr(err)
		return false, err
	}

	c.mu.Lock()
	kept := c.data[:0]
	for _, e := range c.data {
		if c.idOf(e) != id {
			kept = append(kept, e)
		}
	}
	c.data = kept
	c.lastErr = nil
	c.mu.Unlock()
	return true, nil
}

// Data returns a copy of the loaded items.
func (c *Collection[T]) Data() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.data))
	copy(out, c.data)
	return out
}

// Meta returns the pagination counters from the last successful Load.
func (c *Collection[T]) Meta() ListMeta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meta
}

// Err returns the last operation error, nil after a success.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Loading reports whether a Load is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Collection[T]) setErr(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}
