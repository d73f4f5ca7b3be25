package converter

import (
	"inventory-ledger/internal/domain/product"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"
	"inventory-ledger/internal/pkg/pgconv"
)

// Quantities are bounded by product.MaxQuantity, so the int32 conversions below cannot overflow.

func ProductToInfra(p *product.Product) sqlc.CreateProductParams {
	return sqlc.CreateProductParams{
		ID:            p.ID(),
		Name:          p.Name(),
		Quantity:      int32(p.Quantity()),  // #nosec G115
		Available:     int32(p.Available()), // #nosec G115
		TotalSold:     int32(p.TotalSold()), // #nosec G115
		InventoryType: p.InventoryType().String(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductStockToInfra(p *product.Product) sqlc.UpdateProductStockParams {
	return sqlc.UpdateProductStockParams{
		ID:            p.ID(),
		Quantity:      int32(p.Quantity()),  // #nosec G115
		Available:     int32(p.Available()), // #nosec G115
		TotalSold:     int32(p.TotalSold()), // #nosec G115
		InventoryType: p.InventoryType().String(),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductFromInfra(row sqlc.Products) (*product.Product, error) {
	inventoryType, err := product.ParseInventoryType(row.InventoryType)
	if err != nil {
		return nil, err
	}
	return product.ReconstructProduct(
		row.ID,
		row.Name,
		int(row.Quantity),
		int(row.Available),
		int(row.TotalSold),
		inventoryType,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
