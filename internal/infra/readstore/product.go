package readstore

import (
	"context"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/infra/repository/converter"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"
	"inventory-ledger/internal/pkg/pgconv"
	"inventory-ledger/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	GetProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
	GetProductStockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductStockByIDRow, error)
	ListSessionReservationViews(ctx context.Context, db sqlc.DBTX, sessionID string) ([]sqlc.ListSessionReservationViewsRow, error)
}

// ProductReadStore reads without locks; results may be stale by the time a command runs.
type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	rows, err := r.queries.GetProductsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get products by ids", err)
	}
	out := make([]*product.Product, 0, len(rows))
	for _, row := range rows {
		p, convErr := converter.ProductFromInfra(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert product row", convErr, infra.KindDBFailure)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductReadStore) FindStockByID(ctx context.Context, id uuid.UUID) (*readmodel.StockView, error) {
	row, err := r.queries.GetProductStockByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product stock", err)
	}
	return &readmodel.StockView{
		ProductID:     row.ID,
		Name:          row.Name,
		Quantity:      row.Quantity,
		Available:     row.Available,
		Reserved:      row.Reserved,
		TotalSold:     row.TotalSold,
		InventoryType: row.InventoryType,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ProductReadStore) FindSessionReservations(ctx context.Context, sessionID string) ([]*readmodel.SessionReservationView, error) {
	rows, err := r.queries.ListSessionReservationViews(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session reservations", err)
	}
	out := make([]*readmodel.SessionReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &readmodel.SessionReservationView{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			SessionID:   row.SessionID,
			ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
