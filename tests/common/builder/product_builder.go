//go:build unit || e2e

package builder

import (
	"time"

	"inventory-ledger/internal/domain/product"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductBuilder struct {
	ID        uuid.UUID
	Name      string
	Quantity  int
	Available int
	TotalSold int
	Threshold int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProductBuilder starts from a fully available product of 10 units.
func NewProductBuilder() *ProductBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &ProductBuilder{
		ID:        uuid.New(),
		Name:      "Walnut Desk",
		Quantity:  10,
		Available: 10,
		TotalSold: 0,
		Threshold: 10,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// WithStock sets quantity and available together, leaving nothing held or sold.
func (b *ProductBuilder) WithStock(qty int) *ProductBuilder {
	b.Quantity = qty
	b.Available = qty
	return b
}

func (b *ProductBuilder) BuildDomain() *product.Product {
	policy := product.StockPolicy{LowStockThreshold: b.Threshold}
	return product.ReconstructProduct(
		b.ID,
		b.Name,
		b.Quantity,
		b.Available,
		b.TotalSold,
		policy.Classify(b.Available),
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *ProductBuilder) BuildInfra() sqlc.Products {
	policy := product.StockPolicy{LowStockThreshold: b.Threshold}
	return sqlc.Products{
		ID:            b.ID,
		Name:          b.Name,
		Quantity:      int32(b.Quantity),
		Available:     int32(b.Available),
		TotalSold:     int32(b.TotalSold),
		InventoryType: policy.Classify(b.Available).String(),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}
