package bootstrap

import (
	"log/slog"

	"inventory-ledger/internal/pkg/config"
	"inventory-ledger/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewSweeper,
	),
	fx.Invoke(RegisterSweeper),
)

func RegisterSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper, cfg config.InventoryConfig) {
	if !cfg.SweepEnabled {
		slog.Info("reservation sweeper disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: sweeper.Start,
		OnStop:  sweeper.Stop,
	})
}
