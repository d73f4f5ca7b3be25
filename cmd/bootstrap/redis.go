package bootstrap

import (
	"context"
	"log/slog"

	"inventory-ledger/internal/infra/cache"
	"inventory-ledger/internal/pkg/config"
	"inventory-ledger/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewStockCache,
	),
)

// NewRedisClient returns nil when the cache is disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The ledger works without the cache, so a dead Redis is only worth a warning.
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis is unreachable, stock reads will hit the database", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewStockCache(client *redis.Client, cfg config.Config) shared.StockCache {
	if client == nil {
		return cache.NoopStockCache{}
	}
	return cache.NewRedisStockCache(client, cfg.Cache.StockTTL)
}
