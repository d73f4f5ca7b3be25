package reservation

import (
	"time"

	"inventory-ledger/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
	TTL   time.Duration
}

// Reservation is a time-boxed hold against a product's available stock.
type Reservation struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  int
	sessionID SessionID
	expiresAt time.Time
	createdAt time.Time
}

func NewReservation(services *Services, productID uuid.UUID, sessionID SessionID, quantity int) (*Reservation, error) {
	if productID == uuid.Nil {
		return nil, ErrInvalidProductID
	}
	if sessionID.String() == "" {
		return nil, ErrEmptySession
	}
	if quantity <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if services.TTL <= 0 {
		return nil, ErrInvalidTTL
	}

	now := services.Clock.Now()
	return &Reservation{
		id:        uuid.New(),
		productID: productID,
		quantity:  quantity,
		sessionID: sessionID,
		expiresAt: now.Add(services.TTL),
		createdAt: now,
	}, nil
}

func ReconstructReservation(
	id, productID uuid.UUID,
	quantity int,
	sessionID SessionID,
	expiresAt, createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		productID: productID,
		quantity:  quantity,
		sessionID: sessionID,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}
}

// IsExpired reports whether the hold is past its deadline; expiresAt itself counts as expired.
func (r *Reservation) IsExpired(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) ProductID() uuid.UUID { return r.productID }
func (r *Reservation) Quantity() int        { return r.quantity }
func (r *Reservation) SessionID() SessionID { return r.sessionID }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
