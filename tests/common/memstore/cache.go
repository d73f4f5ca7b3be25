//go:build unit || e2e

package memstore

import (
	"context"
	"sync"

	"inventory-ledger/internal/usecase/readmodel"
	"inventory-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// Cache is a map-backed StockCache that records invalidations.
type Cache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]readmodel.StockView
	invalidated []uuid.UUID
}

func NewCache() *Cache {
	return &Cache{entries: make(map[uuid.UUID]readmodel.StockView)}
}

var _ shared.StockCache = (*Cache)(nil)

func (c *Cache) Get(_ context.Context, productID uuid.UUID) (*readmodel.StockView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[productID]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (c *Cache) Set(_ context.Context, view *readmodel.StockView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[view.ProductID] = *view
	return nil
}

func (c *Cache) Invalidate(_ context.Context, productIDs ...uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range productIDs {
		delete(c.entries, id)
		c.invalidated = append(c.invalidated, id)
	}
	return nil
}

func (c *Cache) Invalidated() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]uuid.UUID, len(c.invalidated))
	copy(out, c.invalidated)
	return out
}
