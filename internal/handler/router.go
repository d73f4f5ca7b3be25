package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inventory-ledger/internal/handler/api"
	"inventory-ledger/internal/handler/middleware"
	"inventory-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	inventoryHandler *api.InventoryHandler,
	productHandler *api.ProductHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, inventoryHandler, productHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, inventoryHandler *api.InventoryHandler, productHandler *api.ProductHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		inventory := apiGroup.Group("/inventory")
		{
			addRoutes(inventory, []route{
				{Method: http.MethodPost, Path: "/availability", Handler: inventoryHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/reservations", Handler: inventoryHandler.Reserve},
				{Method: http.MethodPost, Path: "/reservations/finalize", Handler: inventoryHandler.Finalize},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: inventoryHandler.Release},
				{Method: http.MethodGet, Path: "/sessions/:sessionId/reservations", Handler: inventoryHandler.ListSessionReservations},
				{Method: http.MethodDelete, Path: "/sessions/:sessionId/reservations", Handler: inventoryHandler.ReleaseSession},
				{Method: http.MethodPost, Path: "/deductions", Handler: inventoryHandler.Deduct},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.Create},
				{Method: http.MethodPost, Path: "/:id/restock", Handler: productHandler.Restock},
				{Method: http.MethodGet, Path: "/:id/stock", Handler: productHandler.GetStock},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
