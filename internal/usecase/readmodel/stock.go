package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// StockView is the display shape of a product's stock. It is also the cached value.
type StockView struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	Quantity      int32     `json:"quantity"`
	Available     int32     `json:"available"`
	Reserved      int32     `json:"reserved"`
	TotalSold     int32     `json:"total_sold"`
	InventoryType string    `json:"inventory_type"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SessionReservationView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int32     `json:"quantity"`
	SessionID   string    `json:"session_id"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}
