package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/readmodel"
	"inventory-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const stockKeyPrefix = "inventory:stock:"

func StockKey(productID uuid.UUID) string {
	return stockKeyPrefix + productID.String()
}

type RedisStockCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStockCache(client *redis.Client, ttl time.Duration) *RedisStockCache {
	return &RedisStockCache{client: client, ttl: ttl}
}

func (c *RedisStockCache) Get(ctx context.Context, productID uuid.UUID) (*readmodel.StockView, bool, error) {
	raw, err := c.client.Get(ctx, StockKey(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read stock cache")
	}

	var view readmodel.StockView
	if err := json.Unmarshal(raw, &view); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, false, nil
	}
	return &view, true, nil
}

func (c *RedisStockCache) Set(ctx context.Context, view *readmodel.StockView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "failed to encode stock view")
	}
	if err := c.client.Set(ctx, StockKey(view.ProductID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write stock cache")
	}
	return nil
}

func (c *RedisStockCache) Invalidate(ctx context.Context, productIDs ...uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}
	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = StockKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate stock cache")
	}
	return nil
}

// NoopStockCache is used when Redis is disabled; every read is a miss.
type NoopStockCache struct{}

func (NoopStockCache) Get(context.Context, uuid.UUID) (*readmodel.StockView, bool, error) {
	return nil, false, nil
}

func (NoopStockCache) Set(context.Context, *readmodel.StockView) error { return nil }

func (NoopStockCache) Invalidate(context.Context, ...uuid.UUID) error { return nil }

var (
	_ shared.StockCache = (*RedisStockCache)(nil)
	_ shared.StockCache = NoopStockCache{}
)
