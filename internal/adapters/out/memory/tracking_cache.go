package memory

import (
	"context"
	"sync"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// TrackingCache keeps tracking entries in a map, for single-process runs
// without Redis.
type TrackingCache struct {
	mu      sync.RWMutex
	entries map[uint64]ports.TrackingEntry
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{entries: make(map[uint64]ports.TrackingEntry)}
}

func (c *TrackingCache) Get(_ context.Context, id kernel.ParcelID) (ports.TrackingEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[id.Uint64()]
	return entry, ok, nil
}

func (c *TrackingCache) Set(_ context.Context, entry ports.TrackingEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.entries[entry.ParcelID]; ok && current.Version > entry.Version {
		return nil
	}
	c.entries[entry.ParcelID] = entry
	return nil
}

func (c *TrackingCache) Delete(_ context.Context, id kernel.ParcelID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id.Uint64())
	return nil
}
