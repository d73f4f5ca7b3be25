package product

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 255
	MaxQuantity   = math.MaxInt32
)

// Item is a requested quantity of one product, validated once at the boundary.
type Item struct {
	productID uuid.UUID
	quantity  int
}

func NewItem(productID uuid.UUID, quantity int) (Item, error) {
	if productID == uuid.Nil {
		return Item{}, ErrInvalidProductID
	}
	if quantity <= 0 {
		return Item{}, ErrNonPositiveAmount
	}
	if quantity > MaxQuantity {
		return Item{}, ErrQuantityTooLarge
	}
	return Item{productID: productID, quantity: quantity}, nil
}

func (i Item) ProductID() uuid.UUID { return i.productID }
func (i Item) Quantity() int        { return i.quantity }

// Items is a non-empty item list with one entry per product, ordered by product id.
// The ordering is the lock acquisition order for multi-product transactions.
type Items struct {
	items []Item
}

func NewItems(items ...Item) (Items, error) {
	if len(items) == 0 {
		return Items{}, ErrEmptyItems
	}

	totals := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		if it.productID == uuid.Nil || it.quantity <= 0 {
			return Items{}, ErrNonPositiveAmount
		}
		totals[it.productID] += it.quantity
		if totals[it.productID] > MaxQuantity {
			return Items{}, ErrQuantityTooLarge
		}
	}

	merged := make([]Item, 0, len(totals))
	for id, qty := range totals {
		merged = append(merged, Item{productID: id, quantity: qty})
	}
	sort.Slice(merged, func(a, b int) bool {
		return compareUUID(merged[a].productID, merged[b].productID) < 0
	})

	return Items{items: merged}, nil
}

func (l Items) All() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l Items) Len() int { return len(l.items) }

func (l Items) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.items))
	for i, it := range l.items {
		ids[i] = it.productID
	}
	return ids
}

// Totals returns the requested quantity per product.
func (l Items) Totals() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(l.items))
	for _, it := range l.items {
		out[it.productID] = it.quantity
	}
	return out
}

func (l Items) IsEmpty() bool { return len(l.items) == 0 }

// SortIDs orders ids the same way Postgres orders uuid columns (bytewise).
func SortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(a, b int) bool {
		return compareUUID(ids[a], ids[b]) < 0
	})
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
