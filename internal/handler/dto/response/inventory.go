package response

import (
	"time"

	"inventory-ledger/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FailedItemResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	RequestedQuantity int       `json:"requestedQuantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	Status            string    `json:"status"`
}

type AvailabilityResponse struct {
	Success     bool                 `json:"success"`
	FailedItems []FailedItemResponse `json:"failedItems"`
}

type ReserveResponse struct {
	Success        bool        `json:"success"`
	ReservationIDs []uuid.UUID `json:"reservationIds"`
}

type FinalizeResponse struct {
	Success bool `json:"success"`
}

type DeductionResponse struct {
	Success bool `json:"success"`
}

type ReleaseSessionResponse struct {
	Released int `json:"released"`
}

type SessionReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int32     `json:"quantity"`
	SessionID   string    `json:"sessionId"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FailedItemsDetail is the error detail body for stock failures.
type FailedItemsDetail struct {
	FailedItems []FailedItemResponse `json:"failedItems"`
}

// FromFailedItems never returns nil so the field encodes as [] rather than null.
func FromFailedItems(items []readmodel.FailedItem) []FailedItemResponse {
	out := make([]FailedItemResponse, 0, len(items))
	if err := copier.Copy(&out, items); err != nil {
		return []FailedItemResponse{}
	}
	return out
}

func FromSessionReservations(views []*readmodel.SessionReservationView) []SessionReservationResponse {
	out := make([]SessionReservationResponse, 0, len(views))
	for _, v := range views {
		var r SessionReservationResponse
		if err := copier.Copy(&r, v); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}
