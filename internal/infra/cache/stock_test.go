//go:build e2e

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"inventory-ledger/internal/infra/cache"
	"inventory-ledger/internal/usecase/readmodel"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type StockCacheSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	cache     *cache.RedisStockCache
}

func TestStockCacheSuite(t *testing.T) {
	suite.Run(t, new(StockCacheSuite))
}

func (s *StockCacheSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")).WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(s.T(), err, "failed to start redis container")
	s.container = container

	host, err := container.Host(ctx)
	require.NoError(s.T(), err)
	port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(s.T(), err)

	s.client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	require.NoError(s.T(), s.client.Ping(ctx).Err())

	s.cache = cache.NewRedisStockCache(s.client, time.Minute)
}

func (s *StockCacheSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(ctx)
	}
}

func (s *StockCacheSuite) SetupTest() {
	require.NoError(s.T(), s.client.FlushDB(context.Background()).Err())
}

func (s *StockCacheSuite) TestGet_Miss() {
	view, ok, err := s.cache.Get(context.Background(), uuid.New())

	s.Require().NoError(err)
	s.False(ok)
	s.Nil(view)
}

func (s *StockCacheSuite) TestSetThenGet() {
	ctx := context.Background()
	want := &readmodel.StockView{
		ProductID:     uuid.New(),
		Name:          "Walnut desk",
		Quantity:      10,
		Available:     6,
		Reserved:      4,
		InventoryType: "low_stock",
		UpdatedAt:     time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	s.Require().NoError(s.cache.Set(ctx, want))

	got, ok, err := s.cache.Get(ctx, want.ProductID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(want.Available, got.Available)
	s.Equal(want.Reserved, got.Reserved)
	s.True(want.UpdatedAt.Equal(got.UpdatedAt))

	ttl, err := s.client.TTL(ctx, cache.StockKey(want.ProductID)).Result()
	s.Require().NoError(err)
	assert.LessOrEqual(s.T(), ttl, time.Minute)
	assert.Greater(s.T(), ttl, time.Duration(0))
}

func (s *StockCacheSuite) TestInvalidate() {
	ctx := context.Background()
	a := &readmodel.StockView{ProductID: uuid.New(), Name: "a"}
	b := &readmodel.StockView{ProductID: uuid.New(), Name: "b"}
	s.Require().NoError(s.cache.Set(ctx, a))
	s.Require().NoError(s.cache.Set(ctx, b))

	s.Require().NoError(s.cache.Invalidate(ctx, a.ProductID, b.ProductID))

	_, okA, err := s.cache.Get(ctx, a.ProductID)
	s.Require().NoError(err)
	_, okB, err := s.cache.Get(ctx, b.ProductID)
	s.Require().NoError(err)
	s.False(okA)
	s.False(okB)
}

func (s *StockCacheSuite) TestGet_CorruptEntryIsMiss() {
	ctx := context.Background()
	id := uuid.New()
	s.Require().NoError(s.client.Set(ctx, cache.StockKey(id), "not-json", time.Minute).Err())

	_, ok, err := s.cache.Get(ctx, id)
	s.NoError(err)
	s.False(ok)
}
