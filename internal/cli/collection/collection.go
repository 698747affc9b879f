// Package collection implements the client's cache policy for server-owned
// lists: fetch on first use, cache by key, and invalidate-and-refetch after
// any successful mutation. The cache is never patched in place, so it cannot
// drift from server state. The next read always rebuilds it.
package collection

import (
	"context"
	"sync"
)

// Collection caches one server-owned list under a resource key.
//
// Every invalidation bumps a sequence number and each fetch is tagged with
// the sequence it started under. A fetch that resolves after a newer
// invalidation is discarded and reissued instead of overwriting fresher
// state, so out-of-order responses never become visible.
type Collection[T any] struct {
	key   string
	fetch func(ctx context.Context) ([]T, error)

	mu    sync.Mutex
	items []T
	valid bool
	seq   uint64
}

// New builds a collection over a read call. key identifies the resource the
// cache belongs to ("links", "feedbacks").
func New[T any](key string, fetch func(ctx context.Context) ([]T, error)) *Collection[T] {
	return &Collection[T]{key: key, fetch: fetch}
}

// Key returns the resource key.
func (c *Collection[T]) Key() string { return c.key }

// Get returns the cached list, fetching it first when the cache is empty or
// was invalidated. A fetch overtaken by an invalidation is retried.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	for {
		c.mu.Lock()
		if c.valid {
			items := c.items
			c.mu.Unlock()
			return items, nil
		}
		seq := c.seq
		c.mu.Unlock()

		items, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.seq != seq {
			// a mutation invalidated the collection while this fetch was in
			// flight; the response is stale
			c.mu.Unlock()
			continue
		}
		c.items = items
		c.valid = true
		c.mu.Unlock()
		return items, nil
	}
}

// Cached returns the current cache entry without fetching. The second result
// is false when the cache is invalid.
func (c *Collection[T]) Cached() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items, c.valid
}

// Invalidate discards the cache entry, forcing the next Get to refetch.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.seq++
	c.items = nil
	c.valid = false
	c.mu.Unlock()
}

// Mutate runs a write call. On success the cache is invalidated; on failure
// it is left untouched and the error is returned unchanged.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}
