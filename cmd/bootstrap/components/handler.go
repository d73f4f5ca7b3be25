package components

import (
	"inventory-ledger/internal/handler"
	"inventory-ledger/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInventoryHandler,
		api.NewProductHandler,
	),
	fx.Invoke(handler.NewRouter),
)
