package request

import (
	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/domain/reservation"

	"github.com/google/uuid"
)

type ItemRequest struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1,max=2147483647"`
}

type AvailabilityRequest struct {
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ReserveRequest struct {
	SessionID string        `json:"sessionId" binding:"required,max=128"`
	Items     []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type FinalizeRequest struct {
	Items          []ItemRequest `json:"items" binding:"required,min=1,dive"`
	ReservationIDs []uuid.UUID   `json:"reservationIds" binding:"required,min=1"`
}

type DeductionRequest struct {
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r AvailabilityRequest) ToDomain() (product.Items, error) {
	return toItems(r.Items)
}

func (r ReserveRequest) ToDomain() (reservation.SessionID, product.Items, error) {
	sessionID, err := reservation.NewSessionID(r.SessionID)
	if err != nil {
		return reservation.SessionID{}, product.Items{}, err
	}
	items, err := toItems(r.Items)
	if err != nil {
		return reservation.SessionID{}, product.Items{}, err
	}
	return sessionID, items, nil
}

func (r FinalizeRequest) ToDomain() (product.Items, error) {
	return toItems(r.Items)
}

func (r DeductionRequest) ToDomain() (product.Items, error) {
	return toItems(r.Items)
}

// toItems merges repeated product ids; the usecases see one entry per product.
func toItems(in []ItemRequest) (product.Items, error) {
	items := make([]product.Item, 0, len(in))
	for _, it := range in {
		item, err := product.NewItem(it.ID, it.Quantity)
		if err != nil {
			return product.Items{}, err
		}
		items = append(items, item)
	}
	return product.NewItems(items...)
}
