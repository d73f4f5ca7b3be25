package api

import (
	"net/http"

	reqdto "inventory-ledger/internal/handler/dto/request"
	resdto "inventory-ledger/internal/handler/dto/response"
	"inventory-ledger/internal/handler/httperr"
	"inventory-ledger/internal/usecase/commands"
	"inventory-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewProductHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Create product
// @Description Register a product with its initial owned quantity
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} resdto.CreateProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateProduct(c.Request.Context(), req.Name, *req.Quantity)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create product")
		return
	}
	c.Header("Location", "/api/products/"+id.String()+"/stock")
	c.JSON(http.StatusCreated, resdto.CreateProductResponse{ID: id})
}

// @Summary Restock product
// @Description Add owned units; they become available immediately
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.RestockRequest true "Restock request"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/restock [post]
func (h *ProductHandler) Restock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	var req reqdto.RestockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.Restock(c.Request.Context(), id, req.Quantity); err != nil {
		abortWithUsecaseError(c, err, "Failed to restock product")
		return
	}
	view, err := h.q.GetStock(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load stock")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockView(view))
}

// @Summary Get stock
// @Description Get the stock levels of a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/stock [get]
func (h *ProductHandler) GetStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	view, err := h.q.GetStock(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load stock")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockView(view))
}
