//go:build unit

package product_test

import (
	"testing"

	"inventory-ledger/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name      string
		productID uuid.UUID
		quantity  int
		errIs     error
	}{
		{name: "valid item", productID: id, quantity: 1},
		{name: "nil product id", productID: uuid.Nil, quantity: 1, errIs: product.ErrInvalidProductID},
		{name: "zero quantity", productID: id, quantity: 0, errIs: product.ErrNonPositiveAmount},
		{name: "negative quantity", productID: id, quantity: -2, errIs: product.ErrNonPositiveAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := product.NewItem(tc.productID, tc.quantity)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.productID, it.ProductID())
			assert.Equal(t, tc.quantity, it.Quantity())
		})
	}
}

func TestNewItems(t *testing.T) {
	t.Run("error: empty list", func(t *testing.T) {
		_, err := product.NewItems()
		assert.ErrorIs(t, err, product.ErrEmptyItems)
	})

	t.Run("success: duplicates are merged", func(t *testing.T) {
		a := uuid.New()
		b := uuid.New()
		items, err := product.NewItems(mustItem(t, a, 2), mustItem(t, b, 1), mustItem(t, a, 3))
		require.NoError(t, err)

		assert.Equal(t, 2, items.Len())
		assert.Equal(t, map[uuid.UUID]int{a: 5, b: 1}, items.Totals())
	})

	t.Run("success: items are ordered by product id", func(t *testing.T) {
		ids := []uuid.UUID{
			uuid.MustParse("ffffffff-0000-0000-0000-000000000000"),
			uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			uuid.MustParse("80000000-0000-0000-0000-000000000000"),
		}
		items, err := product.NewItems(mustItem(t, ids[0], 1), mustItem(t, ids[1], 1), mustItem(t, ids[2], 1))
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{ids[1], ids[2], ids[0]}, items.ProductIDs())
	})

	t.Run("error: zero-value item is rejected", func(t *testing.T) {
		_, err := product.NewItems(product.Item{})
		assert.ErrorIs(t, err, product.ErrNonPositiveAmount)
	})
}

func TestSortIDs(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	ids := []uuid.UUID{a, b}
	product.SortIDs(ids)
	assert.Equal(t, []uuid.UUID{b, a}, ids)
}
