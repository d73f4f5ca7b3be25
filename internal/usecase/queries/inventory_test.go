//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/queries"
	"inventory-ledger/internal/usecase/readmodel"
	"inventory-ledger/tests/common/builder"
	queriesmock "inventory-ledger/tests/mock/queries"
	sharedmock "inventory-ledger/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustItems(t *testing.T, pairs map[uuid.UUID]int) product.Items {
	t.Helper()
	var in []product.Item
	for id, qty := range pairs {
		it, err := product.NewItem(id, qty)
		require.NoError(t, err)
		in = append(in, it)
	}
	items, err := product.NewItems(in...)
	require.NoError(t, err)
	return items
}

// =============================================================================
// CheckAvailability Tests
// =============================================================================

func TestQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	inStock := builder.NewProductBuilder().WithStock(10).BuildDomain()
	empty := builder.NewProductBuilder().WithStock(0).BuildDomain()
	missing := uuid.New()

	testCases := []struct {
		name          string
		items         map[uuid.UUID]int
		found         []*product.Product
		storeErr      error
		expectSuccess bool
		expectFailed  map[uuid.UUID]string
		expectErr     error
	}{
		{
			name:          "success: every item is available",
			items:         map[uuid.UUID]int{inStock.ID(): 10},
			found:         []*product.Product{inStock},
			expectSuccess: true,
		},
		{
			name:          "success: every failing item is reported",
			items:         map[uuid.UUID]int{inStock.ID(): 11, empty.ID(): 1, missing: 2},
			found:         []*product.Product{inStock, empty},
			expectSuccess: false,
			expectFailed: map[uuid.UUID]string{
				inStock.ID(): string(product.ShortfallInsufficientStock),
				empty.ID():   string(product.ShortfallOutOfStock),
				missing:      string(product.ShortfallNotFound),
			},
		},
		{
			name:      "error: read store failure",
			items:     map[uuid.UUID]int{inStock.ID(): 1},
			storeErr:  errors.New("connection refused"),
			expectErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockProductReadStore(ctrl)
			cache := sharedmock.NewMockStockCache(ctrl)
			items := mustItems(t, tc.items)
			store.EXPECT().FindByIDs(ctx, items.ProductIDs()).Return(tc.found, tc.storeErr)

			q := queries.NewInventoryQueries(store, cache)
			result, err := q.CheckAvailability(ctx, items)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectSuccess, result.Success)
			got := map[uuid.UUID]string{}
			for _, fi := range result.FailedItems {
				got[fi.ID] = fi.Status
			}
			if len(tc.expectFailed) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.expectFailed, got)
			}
		})
	}
}

// =============================================================================
// GetStock Tests
// =============================================================================

func TestQueries_GetStock(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	view := &readmodel.StockView{
		ProductID:     productID,
		Name:          "Walnut Desk",
		Quantity:      10,
		Available:     6,
		Reserved:      4,
		InventoryType: "low_stock",
		UpdatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name      string
		setup     func(store *queriesmock.MockProductReadStore, cache *sharedmock.MockStockCache)
		expectErr error
	}{
		{
			name: "success: cache hit skips the database",
			setup: func(store *queriesmock.MockProductReadStore, cache *sharedmock.MockStockCache) {
				cache.EXPECT().Get(ctx, productID).Return(view, true, nil)
			},
		},
		{
			name: "success: cache miss reads through and fills the cache",
			setup: func(store *queriesmock.MockProductReadStore, cache *sharedmock.MockStockCache) {
				gomock.InOrder(
					cache.EXPECT().Get(ctx, productID).Return(nil, false, nil),
					store.EXPECT().FindStockByID(ctx, productID).Return(view, nil),
					cache.EXPECT().Set(ctx, view).Return(nil),
				)
			},
		},
		{
			name: "success: cache outage falls through to the database",
			setup: func(store *queriesmock.MockProductReadStore, cache *sharedmock.MockStockCache) {
				cache.EXPECT().Get(ctx, productID).Return(nil, false, errors.New("dial tcp: connection refused"))
				store.EXPECT().FindStockByID(ctx, productID).Return(view, nil)
				cache.EXPECT().Set(ctx, view).Return(errors.New("dial tcp: connection refused"))
			},
		},
		{
			name: "error: unknown product",
			setup: func(store *queriesmock.MockProductReadStore, cache *sharedmock.MockStockCache) {
				cache.EXPECT().Get(ctx, productID).Return(nil, false, nil)
				store.EXPECT().FindStockByID(ctx, productID).
					Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))
			},
			expectErr: errs.ErrProductNotFound,
		},
		{
			name: "error: database failure",
			setup: func(store *queriesmock.MockProductReadStore, cache *sharedmock.MockStockCache) {
				cache.EXPECT().Get(ctx, productID).Return(nil, false, nil)
				store.EXPECT().FindStockByID(ctx, productID).
					Return(nil, infra.WrapRepoErr("failed to get product stock", errors.New("boom")))
			},
			expectErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockProductReadStore(ctrl)
			cache := sharedmock.NewMockStockCache(ctrl)
			tc.setup(store, cache)

			got, err := queries.NewInventoryQueries(store, cache).GetStock(ctx, productID)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

// =============================================================================
// ListSessionReservations Tests
// =============================================================================

func TestQueries_ListSessionReservations(t *testing.T) {
	ctx := context.Background()
	sessionID, err := reservation.NewSessionID("cart-42")
	require.NoError(t, err)

	t.Run("success: views are returned as stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		views := []*readmodel.SessionReservationView{{ID: uuid.New(), SessionID: "cart-42", Quantity: 2}}
		store.EXPECT().FindSessionReservations(ctx, "cart-42").Return(views, nil)

		got, err := queries.NewInventoryQueries(store, sharedmock.NewMockStockCache(ctrl)).ListSessionReservations(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("error: read store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		store.EXPECT().FindSessionReservations(ctx, "cart-42").Return(nil, errors.New("boom"))

		_, err := queries.NewInventoryQueries(store, sharedmock.NewMockStockCache(ctrl)).ListSessionReservations(ctx, sessionID)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
