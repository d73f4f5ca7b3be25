//go:build unit

package config_test

import (
	"testing"
	"time"

	"inventory-ledger/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("success: defaults are applied", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_USER", "ledger")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "inventory")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 10, cfg.Inventory.LowStockThreshold)
		assert.Equal(t, 30*time.Minute, cfg.Inventory.ReservationTTL)
		assert.Equal(t, time.Minute, cfg.Inventory.SweepInterval)
		assert.Equal(t, 100, cfg.Inventory.SweepBatchSize)
		assert.Equal(t, 5*time.Minute, cfg.Cache.StockTTL)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	})

	t.Run("success: threshold is overridable", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_USER", "ledger")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "inventory")
		t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "3")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Inventory.LowStockThreshold)
	})

	t.Run("error: negative threshold is rejected", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_USER", "ledger")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "inventory")
		t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "-1")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestDBConfig_BuildDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "inv", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/inv?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}
