package shared

import (
	"context"
	"time"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Products() ProductRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	// LockByIDs row-locks the products in ascending id order; unknown ids are absent from the map.
	LockByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error)
	SaveStock(ctx context.Context, p *product.Product) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// Delete reports false when the row was already gone.
	Delete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, bool, error)
	ListBySession(ctx context.Context, sessionID reservation.SessionID) ([]*reservation.Reservation, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// StockCache is the read-through cache in front of GetStock. Misses return (nil, false, nil).
type StockCache interface {
	Get(ctx context.Context, productID uuid.UUID) (*readmodel.StockView, bool, error)
	Set(ctx context.Context, view *readmodel.StockView) error
	Invalidate(ctx context.Context, productIDs ...uuid.UUID) error
}
