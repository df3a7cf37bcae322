// Package cache holds the authoritative in-memory collection for one
// screen. The collection is always a complete snapshot as of the last
// successful refresh or local mutation, never a partial page.
package cache

import (
	"context"
	"sync"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
)

// ListCache caches the last-fetched full collection of one resource.
type ListCache[T domain.Item] struct {
	store domain.Store[T]

	mu     sync.RWMutex
	items  []T
	loaded bool
}

// New creates an empty cache backed by the given store.
func New[T domain.Item](store domain.Store[T]) *ListCache[T] {
	return &ListCache[T]{store: store}
}

// Refresh fetches the full collection and replaces the held snapshot
// atomically. On failure the previous snapshot stays intact, so readers
// keep stale-but-available data.
func (c *ListCache[T]) Refresh(ctx context.Context) error {
	items, err := c.store.ListAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.loaded = true
	return nil
}

// Snapshot returns a copy of the held collection in store order.
func (c *ListCache[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached items.
func (c *ListCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loaded reports whether at least one refresh has completed.
func (c *ListCache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Find returns the cached item with the given id.
func (c *ListCache[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ItemID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ApplyLocalDelete removes an item without a refetch, used after the
// store confirmed a delete.
func (c *ListCache[T]) ApplyLocalDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ItemID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
