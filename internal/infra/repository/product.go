package repository

import (
	"context"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/infra/repository/converter"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) error
	LockProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
	UpdateProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductStockParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.queries.CreateProduct(ctx, r.db, converter.ProductToInfra(p)); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

// LockByIDs takes row locks in ascending id order within one statement.
// Ids without a row are simply absent from the result.
func (r *ProductRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error) {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	product.SortIDs(sorted)

	rows, err := r.queries.LockProductsByIDs(ctx, r.db, sorted)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}

	out := make(map[uuid.UUID]*product.Product, len(rows))
	for _, row := range rows {
		p, convErr := converter.ProductFromInfra(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert product row", convErr, infra.KindDBFailure)
		}
		out[p.ID()] = p
	}
	return out, nil
}

func (r *ProductRepository) SaveStock(ctx context.Context, p *product.Product) error {
	affected, err := r.queries.UpdateProductStock(ctx, r.db, converter.ProductStockToInfra(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update product stock", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
