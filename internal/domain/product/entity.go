package product

import (
	"fmt"
	"strings"
	"time"

	"inventory-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

// InsufficientStockError carries the numbers a storefront needs to suggest a smaller quantity.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == errs.ErrInsufficientStock
}

// Product holds the inventory-relevant fields of a catalog product.
// Invariant: 0 <= available <= quantity and quantity = available + held + totalSold.
type Product struct {
	id            uuid.UUID
	name          string
	quantity      int
	available     int
	totalSold     int
	inventoryType InventoryType
	createdAt     time.Time
	updatedAt     time.Time
}

func NewProduct(policy StockPolicy, name string, quantity int, now time.Time) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if quantity > MaxQuantity {
		return nil, ErrQuantityTooLarge
	}

	return &Product{
		id:            uuid.New(),
		name:          name,
		quantity:      quantity,
		available:     quantity,
		totalSold:     0,
		inventoryType: policy.Classify(quantity),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	quantity, available, totalSold int,
	inventoryType InventoryType,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		quantity:      quantity,
		available:     available,
		totalSold:     totalSold,
		inventoryType: inventoryType,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Hold takes qty out of available stock for a reservation.
func (p *Product) Hold(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveAmount
	}
	if p.available < qty {
		return &InsufficientStockError{ProductID: p.id, Requested: qty, Available: p.available}
	}
	p.available -= qty
	return nil
}

// ReturnHold gives a released or expired reservation back to available stock.
func (p *Product) ReturnHold(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveAmount
	}
	if p.available+qty > p.quantity-p.totalSold {
		return ErrStockOverflow
	}
	p.available += qty
	return nil
}

// Sell records a held quantity as sold. Available stock was already reduced by Hold.
func (p *Product) Sell(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveAmount
	}
	if p.available+p.totalSold+qty > p.quantity {
		return ErrStockOverflow
	}
	p.totalSold += qty
	return nil
}

// Deduct sells qty straight from available stock without a prior hold.
func (p *Product) Deduct(qty int) error {
	if err := p.Hold(qty); err != nil {
		return err
	}
	p.totalSold += qty
	return nil
}

func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveAmount
	}
	if p.quantity+qty > MaxQuantity {
		return ErrQuantityTooLarge
	}
	p.quantity += qty
	p.available += qty
	return nil
}

// Reclassify recomputes the inventory type from available stock and reports whether the product is now low on stock.
func (p *Product) Reclassify(policy StockPolicy, now time.Time) bool {
	p.inventoryType = policy.Classify(p.available)
	p.updatedAt = now
	return p.inventoryType == InventoryLowStock
}

func (p *Product) Held() int {
	return p.quantity - p.available - p.totalSold
}

func (p *Product) ID() uuid.UUID                { return p.id }
func (p *Product) Name() string                 { return p.name }
func (p *Product) Quantity() int                { return p.quantity }
func (p *Product) Available() int               { return p.available }
func (p *Product) TotalSold() int               { return p.totalSold }
func (p *Product) InventoryType() InventoryType { return p.inventoryType }
func (p *Product) CreatedAt() time.Time         { return p.createdAt }
func (p *Product) UpdatedAt() time.Time         { return p.updatedAt }
