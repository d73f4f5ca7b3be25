//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/infra/repository"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"
	"inventory-ledger/tests/common/builder"
	repositorymock "inventory-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Product Tests
// =============================================================================

func TestProductRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockProductWriteQueries, *product.Product, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: product created with its stock columns",
			setupMock: func(mock *repositorymock.MockProductWriteQueries, p *product.Product, tx sqlc.DBTX) {
				mock.EXPECT().CreateProduct(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateProductParams) error {
						assert.Equal(t, p.ID(), arg.ID)
						assert.Equal(t, int32(p.Quantity()), arg.Quantity)
						assert.Equal(t, int32(p.Available()), arg.Available)
						assert.Equal(t, p.InventoryType().String(), arg.InventoryType)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockProductWriteQueries, _ *product.Product, tx sqlc.DBTX) {
				mock.EXPECT().CreateProduct(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate product id",
			setupMock: func(mock *repositorymock.MockProductWriteQueries, _ *product.Product, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateProduct(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewProductRepository(mockQueries, mockDB)
			p := builder.NewProductBuilder().BuildDomain()

			tc.setupMock(mockQueries, p, mockDB)

			actualError := repo.Create(ctx, p)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// LockByIDs Tests
// =============================================================================

func TestProductRepository_LockByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("success: ids are locked in ascending order and missing rows are omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewProductRepository(mockQueries, mockDB)

		low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		high := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")
		missing := uuid.MustParse("88888888-0000-0000-0000-000000000001")
		row := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.ID = low }).BuildInfra()
		row2 := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.ID = high }).BuildInfra()

		requested := []uuid.UUID{high, missing, low}
		mockQueries.EXPECT().LockProductsByIDs(ctx, mockDB, []uuid.UUID{low, missing, high}).
			Return([]sqlc.Products{row, row2}, nil)

		got, err := repo.LockByIDs(ctx, requested)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Contains(t, got, low)
		assert.Contains(t, got, high)
		assert.NotContains(t, got, missing)
		assert.Equal(t, []uuid.UUID{high, missing, low}, requested, "caller slice must not be reordered")
	})

	t.Run("error: lock timeout is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewProductRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockProductsByIDs(ctx, mockDB, gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"})

		_, err := repo.LockByIDs(ctx, []uuid.UUID{uuid.New()})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindLockTimeout))
	})

	t.Run("error: corrupt inventory type is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewProductRepository(mockQueries, mockDB)

		row := builder.NewProductBuilder().BuildInfra()
		row.InventoryType = "discontinued"
		mockQueries.EXPECT().LockProductsByIDs(ctx, mockDB, gomock.Any()).Return([]sqlc.Products{row}, nil)

		_, err := repo.LockByIDs(ctx, []uuid.UUID{row.ID})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// SaveStock Tests
// =============================================================================

func TestProductRepository_SaveStock(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:     "success: one row updated",
			affected: 1,
		},
		{
			name:          "error: no row updated",
			affected:      0,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: check constraint rejected the write",
			queryErr:      &pgconn.PgError{Code: "23514", Message: "violates check constraint"},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name:          "error: serialization failure",
			queryErr:      &pgconn.PgError{Code: "40001", Message: "could not serialize access"},
			expectedError: true,
			expectKind:    infra.KindSerialization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewProductRepository(mockQueries, mockDB)
			p := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Available = 7 }).BuildDomain()

			mockQueries.EXPECT().UpdateProductStock(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateProductStockParams) (int64, error) {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, int32(7), arg.Available)
					assert.Equal(t, "low_stock", arg.InventoryType)
					return tc.affected, tc.queryErr
				})

			actualError := repo.SaveStock(ctx, p)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
