package readmodel

import (
	"inventory-ledger/internal/domain/product"

	"github.com/google/uuid"
)

// FailedItem reports one item a checkout cannot get. Name is empty for unknown products.
type FailedItem struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	RequestedQuantity int       `json:"requested_quantity"`
	AvailableQuantity int       `json:"available_quantity"`
	Status            string    `json:"status"`
}

func FailedItemsFromShortfalls(shortfalls []product.Shortfall) []FailedItem {
	if len(shortfalls) == 0 {
		return nil
	}
	out := make([]FailedItem, len(shortfalls))
	for i, s := range shortfalls {
		out[i] = FailedItem{
			ID:                s.ProductID,
			Name:              s.Name,
			RequestedQuantity: s.Requested,
			AvailableQuantity: s.Available,
			Status:            string(s.Status),
		}
	}
	return out
}
