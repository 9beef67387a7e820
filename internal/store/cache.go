package store

import (
	"context"
	"sync"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// CachedStore wraps a Store and caches the full vehicle list in memory.
// The record set is small (thousands of rows) and read on every incoming
// message, so one snapshot amortizes the common path. Writes pass through
// and drop the snapshot; ClearCache must also be called synchronously
// after any successful price update, before the update is reported to the
// user, so a follow-up lookup in the same conversation never sees a stale
// price.
type CachedStore struct {
	Store

	mu       sync.RWMutex
	vehicles []domain.VehicleRecord
	loaded   bool
}

// NewCachedStore wraps the given store with a list cache.
func NewCachedStore(s Store) *CachedStore {
	return &CachedStore{Store: s}
}

// ListVehicles returns the cached record set, loading it on first use.
func (c *CachedStore) ListVehicles(ctx context.Context) ([]domain.VehicleRecord, error) {
	c.mu.RLock()
	if c.loaded {
		vehicles := c.vehicles
		c.mu.RUnlock()
		return vehicles, nil
	}
	c.mu.RUnlock()

	vehicles, err := c.Store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vehicles = vehicles
	c.loaded = true
	c.mu.Unlock()

	return vehicles, nil
}

// ClearCache drops the cached snapshot. The next ListVehicles call reads
// through to the underlying store.
func (c *CachedStore) ClearCache() {
	c.mu.Lock()
	c.vehicles = nil
	c.loaded = false
	c.mu.Unlock()
}

// UpsertVehicle writes through and invalidates the snapshot.
func (c *CachedStore) UpsertVehicle(ctx context.Context, v *domain.VehicleRecord) error {
	if err := c.Store.UpsertVehicle(ctx, v); err != nil {
		return err
	}
	c.ClearCache()
	return nil
}

// UpdatePriceField writes through and invalidates the snapshot.
func (c *CachedStore) UpdatePriceField(
	ctx context.Context,
	id string,
	field domain.PriceField,
	value string,
) error {
	if err := c.Store.UpdatePriceField(ctx, id, field, value); err != nil {
		return err
	}
	c.ClearCache()
	return nil
}
