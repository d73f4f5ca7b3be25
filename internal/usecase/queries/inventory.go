package queries

import (
	"context"
	"log/slog"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/readmodel"
	"inventory-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityResult struct {
	Success     bool
	FailedItems []readmodel.FailedItem
}

type ProductReadStore interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error)
	FindStockByID(ctx context.Context, id uuid.UUID) (*readmodel.StockView, error)
	FindSessionReservations(ctx context.Context, sessionID string) ([]*readmodel.SessionReservationView, error)
}

type InventoryQueries interface {
	// CheckAvailability is an early, lock-free validation; Reserve re-checks under lock.
	CheckAvailability(ctx context.Context, items product.Items) (*AvailabilityResult, error)
	GetStock(ctx context.Context, productID uuid.UUID) (*readmodel.StockView, error)
	ListSessionReservations(ctx context.Context, sessionID reservation.SessionID) ([]*readmodel.SessionReservationView, error)
}

type inventoryQueriesImpl struct {
	store ProductReadStore
	cache shared.StockCache
}

func NewInventoryQueries(store ProductReadStore, cache shared.StockCache) InventoryQueries {
	return &inventoryQueriesImpl{store: store, cache: cache}
}

func (q *inventoryQueriesImpl) CheckAvailability(ctx context.Context, items product.Items) (*AvailabilityResult, error) {
	found, err := q.store.FindByIDs(ctx, items.ProductIDs())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	byID := make(map[uuid.UUID]*product.Product, len(found))
	for _, p := range found {
		byID[p.ID()] = p
	}

	shortfalls := product.Evaluate(items, byID)
	return &AvailabilityResult{
		Success:     len(shortfalls) == 0,
		FailedItems: readmodel.FailedItemsFromShortfalls(shortfalls),
	}, nil
}

func (q *inventoryQueriesImpl) GetStock(ctx context.Context, productID uuid.UUID) (*readmodel.StockView, error) {
	cached, hit, err := q.cache.Get(ctx, productID)
	if err != nil {
		slog.Warn("stock cache read failed, falling back to database",
			"product_id", productID.String(),
			"error", err.Error())
	}
	if hit {
		return cached, nil
	}

	view, err := q.store.FindStockByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := q.cache.Set(ctx, view); err != nil {
		slog.Warn("stock cache write failed",
			"product_id", productID.String(),
			"error", err.Error())
	}
	return view, nil
}

func (q *inventoryQueriesImpl) ListSessionReservations(ctx context.Context, sessionID reservation.SessionID) ([]*readmodel.SessionReservationView, error) {
	views, err := q.store.FindSessionReservations(ctx, sessionID.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
