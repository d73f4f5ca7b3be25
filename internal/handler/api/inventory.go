package api

import (
	"net/http"

	"inventory-ledger/internal/domain/reservation"
	reqdto "inventory-ledger/internal/handler/dto/request"
	resdto "inventory-ledger/internal/handler/dto/response"
	"inventory-ledger/internal/handler/httperr"
	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/commands"
	"inventory-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Check availability
// @Description Check whether every item can be served right now, without holding stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityRequest true "Items to check"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/inventory/availability [post]
func (h *InventoryHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	items, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid items", nil)
		return
	}

	result, err := h.q.CheckAvailability(c.Request.Context(), items)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Success:     result.Success,
		FailedItems: resdto.FromFailedItems(result.FailedItems),
	})
}

// @Summary Reserve stock
// @Description Hold every item for the session, or nothing if any item falls short
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRequest true "Session and items"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/inventory/reservations [post]
func (h *InventoryHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sessionID, items, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid items", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), sessionID, items)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to reserve stock")
		return
	}
	if !result.Success {
		httperr.AbortWithError(c, http.StatusConflict, errs.ErrInsufficientStock, "Insufficient stock", resdto.FailedItemsDetail{
			FailedItems: resdto.FromFailedItems(result.FailedItems),
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.ReserveResponse{
		Success:        true,
		ReservationIDs: result.ReservationIDs,
	})
}

// @Summary Release reservation
// @Description Return a reservation's units to available stock
// @Tags inventory
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/inventory/reservations/{id} [delete]
func (h *InventoryHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	released, err := h.cmds.Release(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to release reservation")
		return
	}
	if !released {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrReservationNotFound, "Reservation not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Finalize reservations
// @Description Convert live reservations into sales; the reservations must match the items exactly
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.FinalizeRequest true "Items and reservation ids"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/inventory/reservations/finalize [post]
func (h *InventoryHandler) Finalize(c *gin.Context) {
	var req reqdto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	items, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid items", nil)
		return
	}

	ok, err := h.cmds.Finalize(c.Request.Context(), items, req.ReservationIDs)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to finalize reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FinalizeResponse{Success: ok})
}

// @Summary List session reservations
// @Description List the reservations currently held by a session
// @Tags inventory
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} resdto.SessionReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/inventory/sessions/{sessionId}/reservations [get]
func (h *InventoryHandler) ListSessionReservations(c *gin.Context) {
	sessionID, err := reservation.NewSessionID(c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}

	views, err := h.q.ListSessionReservations(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionReservations(views))
}

// @Summary Release session
// @Description Release every reservation held by a session
// @Tags inventory
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.ReleaseSessionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/inventory/sessions/{sessionId}/reservations [delete]
func (h *InventoryHandler) ReleaseSession(c *gin.Context) {
	sessionID, err := reservation.NewSessionID(c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}

	count, err := h.cmds.ReleaseSession(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to release session")
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseSessionResponse{Released: count})
}

// @Summary Deduct stock
// @Description Sell items directly from available stock, all or nothing
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.DeductionRequest true "Items to deduct"
// @Success 200 {object} resdto.DeductionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/inventory/deductions [post]
func (h *InventoryHandler) Deduct(c *gin.Context) {
	var req reqdto.DeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	items, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid items", nil)
		return
	}

	if err := h.cmds.UpdateInventory(c.Request.Context(), items); err != nil {
		abortWithUsecaseError(c, err, "Failed to deduct stock")
		return
	}
	c.JSON(http.StatusOK, resdto.DeductionResponse{Success: true})
}
