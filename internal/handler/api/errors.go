package api

import (
	"net/http"

	resdto "inventory-ledger/internal/handler/dto/response"
	"inventory-ledger/internal/handler/httperr"
	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is advertised on 503 responses caused by lock contention.
const retryAfterSeconds = "1"

type retryDetail struct {
	Retryable bool `json:"retryable"`
}

// abortWithUsecaseError maps ledger sentinels to a status and the standard error body.
func abortWithUsecaseError(c *gin.Context, err error, fallbackMsg string) {
	var stockErr *commands.StockError
	if errs.As(err, &stockErr) {
		status := http.StatusConflict
		msg := "Insufficient stock"
		if errs.Is(err, errs.ErrProductNotFound) {
			status = http.StatusNotFound
			msg = "Product not found"
		}
		httperr.AbortWithError(c, status, err, msg, resdto.FailedItemsDetail{
			FailedItems: resdto.FromFailedItems(stockErr.FailedItems),
		})
		return
	}

	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrReservationExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Reservation expired", nil)
	case errs.Is(err, errs.ErrReservationMismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservations do not match the requested items", nil)
	case errs.Is(err, errs.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
	case errs.Is(err, errs.ErrTransientFailure):
		c.Header("Retry-After", retryAfterSeconds)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Inventory is busy, retry the request", retryDetail{Retryable: true})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
