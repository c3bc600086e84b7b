// Package store implements the domain-store pattern: each entity type gets
// one store composing request controllers with an in-memory collection cache.
// Mutations never patch the cache optimistically — every success is followed
// by an unconditional resynchronizing read, so the client can never diverge
// from server truth.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/request"
)

// CollectionConfig wires one Collection to its transport and sinks.
type CollectionConfig[T any] struct {
	// Resource names controllers, logs and metrics, e.g. "users".
	Resource string
	// Singular is the display name used in notifications, e.g. "User".
	Singular string

	List   func(ctx context.Context) ([]T, error)
	Get    func(ctx context.Context, id int64) (*T, error)
	Delete func(ctx context.Context, id int64) error

	Notifier ports.Notifier
	Logger   zerolog.Logger
}

// Collection is the shared half of a domain store: list/detail caches plus
// fetch and delete operations. Entity-specific stores embed it and add their
// create/update mutations.
type Collection[T any] struct {
	cfg CollectionConfig[T]

	listCtl   *request.Controller[[]T]
	detailCtl *request.Controller[*T]
	deleteCtl *request.Controller[struct{}]

	mu       sync.RWMutex
	items    []T
	detail   *T
	detailID int64
}

// NewCollection creates an empty collection store.
func NewCollection[T any](cfg CollectionConfig[T]) *Collection[T] {
	return &Collection[T]{
		cfg:       cfg,
		listCtl:   request.New[[]T](cfg.Resource+".list", cfg.Logger),
		detailCtl: request.New[*T](cfg.Resource+".detail", cfg.Logger),
		deleteCtl: request.New[struct{}](cfg.Resource+".delete", cfg.Logger),
	}
}

// Items returns a copy of the cached collection, in fetch order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Detail returns the cached single-entity view and its id, or nil when no
// detail fetch has succeeded yet.
func (c *Collection[T]) Detail() (*T, int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.detail, c.detailID
}

// ListState exposes the list controller's state for loading indicators.
func (c *Collection[T]) ListState() request.State[[]T] {
	return c.listCtl.State()
}

// FetchAll replaces the entire cached collection with the server's. The
// response is applied wholesale, never merged.
func (c *Collection[T]) FetchAll(ctx context.Context) error {
	terminal := <-c.listCtl.Invoke(ctx, c.cfg.List, func(items []T) {
		c.mu.Lock()
		c.items = items
		c.mu.Unlock()
	})
	if terminal.Err != nil {
		c.cfg.Notifier.Error("Loading "+c.cfg.Resource, terminal.ErrorMessage())
		return terminal.Err
	}
	return nil
}

// FetchOne fills the detail cache for one entity. The result is kept apart
// from the collection cache, not merged into it.
func (c *Collection[T]) FetchOne(ctx context.Context, id int64) error {
	terminal := <-c.detailCtl.Invoke(ctx, func(ctx context.Context) (*T, error) {
		return c.cfg.Get(ctx, id)
	}, func(item *T) {
		c.mu.Lock()
		c.detail = item
		c.detailID = id
		c.mu.Unlock()
	})
	if terminal.Err != nil {
		c.cfg.Notifier.Error(fmt.Sprintf("Loading %s with id %d", c.cfg.Singular, id), terminal.ErrorMessage())
		return terminal.Err
	}
	return nil
}

// Delete removes one entity, then resynchronizes the collection. The cache
// is never filtered locally; a failed delete leaves it untouched.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	terminal := <-c.deleteCtl.Invoke(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.cfg.Delete(ctx, id)
	}, nil)
	if terminal.Err != nil {
		c.cfg.Notifier.Error("Delete error", terminal.ErrorMessage())
		return terminal.Err
	}

	c.cfg.Notifier.Success("Delete success",
		fmt.Sprintf("%s with id %d was successfully deleted", c.cfg.Singular, id))
	c.resync(ctx)
	return nil
}

// resync refreshes the collection after a successful mutation. A resync
// failure is reported through the notifier by FetchAll; the mutation itself
// already succeeded.
func (c *Collection[T]) resync(ctx context.Context) {
	_ = c.FetchAll(ctx)
}

// resyncDetail re-fetches the detail cache when the mutated entity is the
// one currently held there.
func (c *Collection[T]) resyncDetail(ctx context.Context, id int64) {
	c.mu.RLock()
	active := c.detail != nil && c.detailID == id
	c.mu.RUnlock()
	if active {
		_ = c.FetchOne(ctx, id)
	}
}
