//go:build unit || e2e

package builder

import (
	"time"

	"inventory-ledger/internal/domain/reservation"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	SessionID string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
		SessionID: "cart-" + uuid.NewString()[:8],
		CreatedAt: created,
		ExpiresAt: created.Add(30 * time.Minute),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	sessionID, err := reservation.NewSessionID(b.SessionID)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(b.ID, b.ProductID, b.Quantity, sessionID, b.ExpiresAt, b.CreatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.InventoryReservations {
	return sqlc.InventoryReservations{
		ID:        b.ID,
		ProductID: b.ProductID,
		Quantity:  int32(b.Quantity),
		SessionID: b.SessionID,
		ExpiresAt: pgtype.Timestamptz{Time: b.ExpiresAt, Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}
