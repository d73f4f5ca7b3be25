//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"inventory-ledger/internal/handler/api"
	reqdto "inventory-ledger/internal/handler/dto/request"
	resdto "inventory-ledger/internal/handler/dto/response"
	"inventory-ledger/internal/handler/middleware"
	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/readmodel"
	"inventory-ledger/tests/common/httptest"
	"inventory-ledger/tests/common/testutil"
	commandsmock "inventory-ledger/tests/mock/commands"
	queriesmock "inventory-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/products", s.handler.Create)
	s.router.POST("/products/:id/restock", s.handler.Restock)
	s.router.GET("/products/:id/stock", s.handler.GetStock)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func stockViewOf(id uuid.UUID) *readmodel.StockView {
	return &readmodel.StockView{
		ProductID:     id,
		Name:          "Walnut Desk",
		Quantity:      15,
		Available:     15,
		InventoryType: "in_stock",
		UpdatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/products"
	qty := 10
	reqBody := reqdto.CreateProductRequest{Name: "Walnut Desk", Quantity: &qty}

	validation := []testCaseInventory{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "name too long (256 chars)", mutate: testutil.Field("name", strings.Repeat("n", 256)), expectCode: http.StatusBadRequest},
		{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil), expectCode: http.StatusBadRequest},
		{name: "negative quantity", mutate: testutil.Field("quantity", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with Location", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), "Walnut Desk", 10).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/products/" + id.String() + "/stock"})
	})

	s.Run("success: zero initial quantity is allowed", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), "Walnut Desk", 0).Return(uuid.New(), nil)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: blank name rejected by the domain", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), "  ", 10).
			Return(uuid.Nil, errs.Mark(errs.New("product name cannot be empty"), errs.ErrDomainValidation))

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "  "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

// ================================================================================
// TestRestock
// ================================================================================

func (s *ProductHandlerTestSuite) TestRestock() {
	id := uuid.New()
	url := "/products/" + id.String() + "/restock"

	s.Run("success: returns the fresh stock view", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Restock(gomock.Any(), id, 5).Return(nil),
			s.mockQueries.EXPECT().GetStock(gomock.Any(), id).Return(stockViewOf(id), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RestockRequest{Quantity: 5})

		var body resdto.StockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ProductID)
		s.Equal(int32(15), body.Available)
		s.Equal("in_stock", body.InventoryType)
	})

	s.Run("error: unknown product is 404", func() {
		s.mockCommands.EXPECT().Restock(gomock.Any(), id, 5).Return(errs.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RestockRequest{Quantity: 5})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: zero quantity is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": 0})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/xyz/restock", reqdto.RestockRequest{Quantity: 5})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})
}

// ================================================================================
// TestGetStock
// ================================================================================

func (s *ProductHandlerTestSuite) TestGetStock() {
	id := uuid.New()
	url := "/products/" + id.String() + "/stock"

	s.Run("success: returns camelCase stock view", func() {
		s.mockQueries.EXPECT().GetStock(gomock.Any(), id).Return(stockViewOf(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"inventoryType":"in_stock"`)
		s.Contains(rec.Body.String(), `"totalSold":0`)
	})

	s.Run("error: unknown product is 404", func() {
		s.mockQueries.EXPECT().GetStock(gomock.Any(), id).Return(nil, errs.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
