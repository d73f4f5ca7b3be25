package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"inventory-ledger/internal/pkg/clock"
	"inventory-ledger/internal/pkg/config"
	"inventory-ledger/internal/usecase/commands"
)

// Sweeper periodically releases expired reservations.
type Sweeper struct {
	cmds      commands.InventoryCommands
	clock     clock.Clock
	interval  time.Duration
	batchSize int

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewSweeper(cmds commands.InventoryCommands, clk clock.Clock, cfg config.InventoryConfig) *Sweeper {
	return &Sweeper{
		cmds:      cmds,
		clock:     clk,
		interval:  cfg.SweepInterval,
		batchSize: cfg.SweepBatchSize,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the sweep loop and returns immediately.
func (s *Sweeper) Start(_ context.Context) error {
	go s.loop()
	slog.Info("reservation sweeper started", "interval", s.interval.String(), "batch_size", s.batchSize)
	return nil
}

// Stop waits for an in-flight run to finish, or for ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	select {
	case <-s.done:
		slog.Info("reservation sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("reservation sweep failed", "error", err.Error())
			}
		}
	}
}

// RunOnce drains the expired backlog batch by batch. It stops on a short batch,
// or when a full batch released nothing, so failing rows cannot spin the loop.
func (s *Sweeper) RunOnce(ctx context.Context) (commands.SweepResult, error) {
	var total commands.SweepResult
	start := time.Now()

	for {
		res, err := s.cmds.SweepExpired(ctx, s.clock.Now())
		total.Scanned += res.Scanned
		total.Released += res.Released
		total.Failed += res.Failed
		if err != nil {
			return total, err
		}
		if res.Scanned < s.batchSize || res.Released == 0 {
			break
		}
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
	}

	if total.Scanned > 0 {
		slog.Info("reservation sweep completed",
			"scanned", total.Scanned,
			"released", total.Released,
			"failed", total.Failed,
			"duration", time.Since(start))
	}
	return total, nil
}
