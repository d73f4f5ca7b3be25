package response

import (
	"time"

	"inventory-ledger/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateProductResponse struct {
	ID uuid.UUID `json:"id"`
}

type StockResponse struct {
	ProductID     uuid.UUID `json:"productId"`
	Name          string    `json:"name"`
	Quantity      int32     `json:"quantity"`
	Available     int32     `json:"available"`
	Reserved      int32     `json:"reserved"`
	TotalSold     int32     `json:"totalSold"`
	InventoryType string    `json:"inventoryType"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromStockView(v *readmodel.StockView) *StockResponse {
	var r StockResponse
	_ = copier.Copy(&r, v)
	return &r
}
