package product

import "errors"

var (
	ErrEmptyName         = errors.New("product name cannot be empty")
	ErrNameTooLong       = errors.New("product name exceeds maximum length")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrNonPositiveAmount = errors.New("quantity must be positive")
	ErrQuantityTooLarge  = errors.New("quantity exceeds maximum")
	ErrStockOverflow     = errors.New("available stock would exceed owned quantity")
	ErrInvalidInventory  = errors.New("invalid inventory type")
	ErrEmptyItems        = errors.New("at least one item is required")
	ErrInvalidProductID  = errors.New("product id is required")
	ErrNegativeThreshold = errors.New("low stock threshold cannot be negative")
)

type InventoryType string

const (
	InventoryInStock    InventoryType = "in_stock"
	InventoryLowStock   InventoryType = "low_stock"
	InventoryOutOfStock InventoryType = "out_of_stock"
)

func (t InventoryType) String() string {
	return string(t)
}

func (t InventoryType) IsValid() bool {
	switch t {
	case InventoryInStock, InventoryLowStock, InventoryOutOfStock:
		return true
	default:
		return false
	}
}

func ParseInventoryType(s string) (InventoryType, error) {
	t := InventoryType(s)
	if !t.IsValid() {
		return "", ErrInvalidInventory
	}
	return t, nil
}

// StockPolicy classifies stock levels. The threshold is inclusive: available in 1..LowStockThreshold is low stock.
type StockPolicy struct {
	LowStockThreshold int
}

func NewStockPolicy(threshold int) (StockPolicy, error) {
	if threshold < 0 {
		return StockPolicy{}, ErrNegativeThreshold
	}
	return StockPolicy{LowStockThreshold: threshold}, nil
}

func (p StockPolicy) Classify(available int) InventoryType {
	switch {
	case available <= 0:
		return InventoryOutOfStock
	case available <= p.LowStockThreshold:
		return InventoryLowStock
	default:
		return InventoryInStock
	}
}

func (p StockPolicy) IsLowStock(available int) bool {
	return p.Classify(available) == InventoryLowStock
}
