//go:build unit

package product_test

import (
	"errors"
	"testing"
	"time"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPolicy = product.StockPolicy{LowStockThreshold: 10}
	testNow    = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
)

func newProduct(t *testing.T, quantity int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(testPolicy, "Walnut Desk", quantity, testNow)
	require.NoError(t, err)
	return p
}

// =============================================================================
// StockPolicy Tests
// =============================================================================

func TestStockPolicy_Classify(t *testing.T) {
	testCases := []struct {
		name      string
		available int
		expected  product.InventoryType
	}{
		{name: "zero is out of stock", available: 0, expected: product.InventoryOutOfStock},
		{name: "one is low stock", available: 1, expected: product.InventoryLowStock},
		{name: "threshold itself is low stock", available: 10, expected: product.InventoryLowStock},
		{name: "above threshold is in stock", available: 11, expected: product.InventoryInStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, testPolicy.Classify(tc.available))
		})
	}

	t.Run("zero threshold never reports low stock", func(t *testing.T) {
		policy, err := product.NewStockPolicy(0)
		require.NoError(t, err)
		assert.Equal(t, product.InventoryInStock, policy.Classify(1))
		assert.Equal(t, product.InventoryOutOfStock, policy.Classify(0))
	})

	t.Run("negative threshold is rejected", func(t *testing.T) {
		_, err := product.NewStockPolicy(-1)
		assert.ErrorIs(t, err, product.ErrNegativeThreshold)
	})
}

// =============================================================================
// NewProduct Tests
// =============================================================================

func TestNewProduct(t *testing.T) {
	t.Run("success: all stock starts available", func(t *testing.T) {
		p := newProduct(t, 25)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, 25, p.Quantity())
		assert.Equal(t, 25, p.Available())
		assert.Equal(t, 0, p.TotalSold())
		assert.Equal(t, product.InventoryInStock, p.InventoryType())
	})

	t.Run("success: empty product starts out of stock", func(t *testing.T) {
		p := newProduct(t, 0)
		assert.Equal(t, product.InventoryOutOfStock, p.InventoryType())
	})

	testCases := []struct {
		name     string
		prodName string
		quantity int
		errIs    error
	}{
		{name: "blank name", prodName: "   ", quantity: 1, errIs: product.ErrEmptyName},
		{name: "negative quantity", prodName: "Lamp", quantity: -1, errIs: product.ErrNegativeQuantity},
		{name: "quantity above maximum", prodName: "Lamp", quantity: product.MaxQuantity + 1, errIs: product.ErrQuantityTooLarge},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := product.NewProduct(testPolicy, tc.prodName, tc.quantity, testNow)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

// =============================================================================
// Stock Movement Tests
// =============================================================================

func TestProduct_Hold(t *testing.T) {
	t.Run("success: hold reduces available only", func(t *testing.T) {
		p := newProduct(t, 10)
		require.NoError(t, p.Hold(4))

		assert.Equal(t, 6, p.Available())
		assert.Equal(t, 10, p.Quantity())
		assert.Equal(t, 4, p.Held())
	})

	t.Run("error: insufficient stock carries requested and available", func(t *testing.T) {
		p := newProduct(t, 2)
		err := p.Hold(3)

		var stockErr *product.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, 3, stockErr.Requested)
		assert.Equal(t, 2, stockErr.Available)
		assert.Equal(t, p.ID(), stockErr.ProductID)
		assert.True(t, errs.Is(err, errs.ErrInsufficientStock))
		assert.Equal(t, 2, p.Available(), "failed hold must not change stock")
	})

	t.Run("error: non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 2)
		assert.ErrorIs(t, p.Hold(0), product.ErrNonPositiveAmount)
	})
}

func TestProduct_ReturnHold(t *testing.T) {
	t.Run("success: returning a hold restores available", func(t *testing.T) {
		p := newProduct(t, 10)
		require.NoError(t, p.Hold(4))
		require.NoError(t, p.ReturnHold(4))
		assert.Equal(t, 10, p.Available())
		assert.Equal(t, 0, p.Held())
	})

	t.Run("error: returning more than is held overflows", func(t *testing.T) {
		p := newProduct(t, 10)
		require.NoError(t, p.Hold(2))
		assert.ErrorIs(t, p.ReturnHold(3), product.ErrStockOverflow)
		assert.Equal(t, 8, p.Available())
	})
}

func TestProduct_Sell(t *testing.T) {
	t.Run("success: selling a hold keeps available and bumps total sold", func(t *testing.T) {
		p := newProduct(t, 10)
		require.NoError(t, p.Hold(4))
		require.NoError(t, p.Sell(4))

		type stock struct{ Quantity, Available, TotalSold, Held int }
		got := stock{p.Quantity(), p.Available(), p.TotalSold(), p.Held()}
		want := stock{Quantity: 10, Available: 6, TotalSold: 4, Held: 0}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("stock mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: selling without a hold overflows", func(t *testing.T) {
		p := newProduct(t, 10)
		assert.ErrorIs(t, p.Sell(1), product.ErrStockOverflow)
	})
}

func TestProduct_Deduct(t *testing.T) {
	p := newProduct(t, 5)
	require.NoError(t, p.Deduct(3))
	assert.Equal(t, 2, p.Available())
	assert.Equal(t, 3, p.TotalSold())

	err := p.Deduct(3)
	assert.True(t, errs.Is(err, errs.ErrInsufficientStock))
	assert.Equal(t, 2, p.Available())
	assert.Equal(t, 3, p.TotalSold())
}

func TestProduct_Restock(t *testing.T) {
	p := newProduct(t, 0)
	require.NoError(t, p.Restock(12))
	assert.Equal(t, 12, p.Quantity())
	assert.Equal(t, 12, p.Available())

	assert.ErrorIs(t, p.Restock(0), product.ErrNonPositiveAmount)
}

func TestProduct_Reclassify(t *testing.T) {
	later := testNow.Add(time.Minute)

	testCases := []struct {
		name        string
		hold        int
		expected    product.InventoryType
		expectedLow bool
	}{
		{name: "in stock above threshold", hold: 5, expected: product.InventoryInStock},
		{name: "drops to threshold", hold: 10, expected: product.InventoryLowStock, expectedLow: true},
		{name: "drops to one", hold: 19, expected: product.InventoryLowStock, expectedLow: true},
		{name: "drops to zero", hold: 20, expected: product.InventoryOutOfStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newProduct(t, 20)
			require.NoError(t, p.Hold(tc.hold))

			low := p.Reclassify(testPolicy, later)
			assert.Equal(t, tc.expected, p.InventoryType())
			assert.Equal(t, tc.expectedLow, low)
			assert.Equal(t, later, p.UpdatedAt())
		})
	}
}

// =============================================================================
// Availability Tests
// =============================================================================

func TestEvaluate(t *testing.T) {
	plenty := newProduct(t, 10)
	few := newProduct(t, 2)
	none := newProduct(t, 0)
	missingID := uuid.New()

	items := mustItems(t,
		mustItem(t, plenty.ID(), 3),
		mustItem(t, few.ID(), 3),
		mustItem(t, none.ID(), 1),
		mustItem(t, missingID, 1),
	)

	products := map[uuid.UUID]*product.Product{
		plenty.ID(): plenty,
		few.ID():    few,
		none.ID():   none,
	}

	got := product.Evaluate(items, products)
	require.Len(t, got, 3)

	byID := make(map[uuid.UUID]product.Shortfall, len(got))
	for _, s := range got {
		byID[s.ProductID] = s
	}

	assert.Equal(t, product.ShortfallInsufficientStock, byID[few.ID()].Status)
	assert.Equal(t, 3, byID[few.ID()].Requested)
	assert.Equal(t, 2, byID[few.ID()].Available)
	assert.Equal(t, "Walnut Desk", byID[few.ID()].Name)

	assert.Equal(t, product.ShortfallOutOfStock, byID[none.ID()].Status)
	assert.Equal(t, product.ShortfallNotFound, byID[missingID].Status)
	assert.Empty(t, byID[missingID].Name)
}

func mustItem(t *testing.T, id uuid.UUID, qty int) product.Item {
	t.Helper()
	it, err := product.NewItem(id, qty)
	require.NoError(t, err)
	return it
}

func mustItems(t *testing.T, items ...product.Item) product.Items {
	t.Helper()
	l, err := product.NewItems(items...)
	require.NoError(t, err)
	return l
}
