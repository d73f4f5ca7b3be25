package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/pkg/clock"
	"inventory-ledger/internal/pkg/config"
	"inventory-ledger/internal/pkg/errs"
	"inventory-ledger/internal/usecase/readmodel"
	"inventory-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	lowStockJobKind  = "email"
	lowStockJobTopic = "low_stock"
)

type ReserveResult struct {
	Success        bool
	ReservationIDs []uuid.UUID
	FailedItems    []readmodel.FailedItem
}

type SweepResult struct {
	Scanned  int
	Released int
	Failed   int
}

// StockError is returned by UpdateInventory. It unwraps to ErrInsufficientStock or ErrProductNotFound.
type StockError struct {
	cause       error
	FailedItems []readmodel.FailedItem
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: %d item(s) cannot be served", e.cause, len(e.FailedItems))
}

func (e *StockError) Unwrap() error {
	return e.cause
}

func NewStockError(shortfalls []product.Shortfall) *StockError {
	cause := errs.ErrInsufficientStock
	for _, s := range shortfalls {
		if s.Status == product.ShortfallNotFound {
			cause = errs.ErrProductNotFound
			break
		}
	}
	return &StockError{cause: cause, FailedItems: readmodel.FailedItemsFromShortfalls(shortfalls)}
}

type InventoryCommands interface {
	Reserve(ctx context.Context, sessionID reservation.SessionID, items product.Items) (*ReserveResult, error)
	Release(ctx context.Context, reservationID uuid.UUID) (bool, error)
	ReleaseSession(ctx context.Context, sessionID reservation.SessionID) (int, error)
	Finalize(ctx context.Context, items product.Items, reservationIDs []uuid.UUID) (bool, error)
	UpdateInventory(ctx context.Context, items product.Items) error
	CreateProduct(ctx context.Context, name string, quantity int) (uuid.UUID, error)
	Restock(ctx context.Context, productID uuid.UUID, quantity int) error
	SweepExpired(ctx context.Context, now time.Time) (SweepResult, error)
}

type inventoryUseCaseImpl struct {
	uow            shared.UnitOfWork
	cache          shared.StockCache
	clock          clock.Clock
	policy         product.StockPolicy
	reservations   *reservation.Services
	sweepBatchSize int
}

func NewInventoryUseCase(
	uow shared.UnitOfWork,
	cache shared.StockCache,
	clk clock.Clock,
	cfg config.InventoryConfig,
) InventoryCommands {
	return &inventoryUseCaseImpl{
		uow:            uow,
		cache:          cache,
		clock:          clk,
		policy:         product.StockPolicy{LowStockThreshold: cfg.LowStockThreshold},
		reservations:   &reservation.Services{Clock: clk, TTL: cfg.ReservationTTL},
		sweepBatchSize: cfg.SweepBatchSize,
	}
}

// txEffects collects what a transaction did so it can be reported after commit.
// It is reset at the start of every attempt because the unit of work may retry.
type txEffects struct {
	touched  []uuid.UUID
	lowStock []*product.Product
}

func (e *txEffects) reset() {
	e.touched = e.touched[:0]
	e.lowStock = e.lowStock[:0]
}

func (c *inventoryUseCaseImpl) Reserve(ctx context.Context, sessionID reservation.SessionID, items product.Items) (*ReserveResult, error) {
	var (
		result  *ReserveResult
		effects txEffects
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		effects.reset()
		result = nil

		products, err := tx.Products().LockByIDs(ctx, items.ProductIDs())
		if err != nil {
			return err
		}

		if shortfalls := product.Evaluate(items, products); len(shortfalls) > 0 {
			result = &ReserveResult{Success: false, FailedItems: readmodel.FailedItemsFromShortfalls(shortfalls)}
			return nil
		}

		ids := make([]uuid.UUID, 0, items.Len())
		for _, it := range items.All() {
			p := products[it.ProductID()]
			if err := p.Hold(it.Quantity()); err != nil {
				return errs.Mark(err, errs.ErrInsufficientStock)
			}

			res, err := reservation.NewReservation(c.reservations, p.ID(), sessionID, it.Quantity())
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Reservations().Create(ctx, res); err != nil {
				return err
			}
			ids = append(ids, res.ID())

			if err := c.saveStock(ctx, tx, p, &effects); err != nil {
				return err
			}
		}

		result = &ReserveResult{Success: true, ReservationIDs: ids}
		return nil
	})
	if err != nil {
		return nil, c.mapTxError(err)
	}

	if result.Success {
		c.afterCommit(ctx, &effects)
		slog.Info("stock reserved",
			"session_id", sessionID.String(),
			"reservations", len(result.ReservationIDs))
	}
	return result, nil
}

func (c *inventoryUseCaseImpl) Release(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	var (
		released bool
		effects  txEffects
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		effects.reset()
		released = false

		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}

		released, err = c.returnHold(ctx, tx, res.ProductID(), res.ID(), &effects)
		return err
	})
	if err != nil {
		return false, c.mapTxError(err)
	}

	if released {
		c.afterCommit(ctx, &effects)
	}
	return released, nil
}

func (c *inventoryUseCaseImpl) ReleaseSession(ctx context.Context, sessionID reservation.SessionID) (int, error) {
	var live []*reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		live, err = tx.Reservations().ListBySession(ctx, sessionID)
		return err
	})
	if err != nil {
		return 0, c.mapTxError(err)
	}

	count := 0
	for _, res := range live {
		ok, err := c.Release(ctx, res.ID())
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

func (c *inventoryUseCaseImpl) Finalize(ctx context.Context, items product.Items, reservationIDs []uuid.UUID) (bool, error) {
	ids := uniqueIDs(reservationIDs)
	if len(ids) == 0 {
		return false, errs.Mark(errs.New("no reservations to finalize"), errs.ErrDomainValidation)
	}

	var effects txEffects
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		effects.reset()
		now := c.clock.Now()

		held := make([]*reservation.Reservation, 0, len(ids))
		totals := make(map[uuid.UUID]int, len(ids))
		productIDs := make([]uuid.UUID, 0, len(ids))
		for _, id := range ids {
			res, err := tx.Reservations().FindByID(ctx, id)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Wrap(errs.ErrReservationExpired, fmt.Sprintf("reservation %s no longer exists", id))
				}
				return err
			}
			if res.IsExpired(now) {
				return errs.Wrap(errs.ErrReservationExpired, fmt.Sprintf("reservation %s expired at %s", id, res.ExpiresAt().Format(time.RFC3339)))
			}
			if _, seen := totals[res.ProductID()]; !seen {
				productIDs = append(productIDs, res.ProductID())
			}
			totals[res.ProductID()] += res.Quantity()
			held = append(held, res)
		}

		if !items.IsEmpty() && !sameTotals(totals, items.Totals()) {
			return errs.ErrReservationMismatch
		}

		products, err := tx.Products().LockByIDs(ctx, productIDs)
		if err != nil {
			return err
		}

		for _, res := range held {
			deleted, ok, err := tx.Reservations().Delete(ctx, res.ID())
			if err != nil {
				return err
			}
			if !ok {
				// Swept or released between the read and the product lock.
				return errs.Wrap(errs.ErrReservationExpired, fmt.Sprintf("reservation %s no longer exists", res.ID()))
			}
			p, found := products[deleted.ProductID()]
			if !found {
				return errs.ErrProductNotFound
			}
			if err := p.Sell(deleted.Quantity()); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		for _, id := range productIDs {
			if err := c.saveStock(ctx, tx, products[id], &effects); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, c.mapTxError(err)
	}

	c.afterCommit(ctx, &effects)
	slog.Info("reservations finalized", "reservations", len(ids))
	return true, nil
}

func (c *inventoryUseCaseImpl) UpdateInventory(ctx context.Context, items product.Items) error {
	var effects txEffects

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		effects.reset()

		products, err := tx.Products().LockByIDs(ctx, items.ProductIDs())
		if err != nil {
			return err
		}

		if shortfalls := product.Evaluate(items, products); len(shortfalls) > 0 {
			return NewStockError(shortfalls)
		}

		for _, it := range items.All() {
			p := products[it.ProductID()]
			if err := p.Deduct(it.Quantity()); err != nil {
				return errs.Mark(err, errs.ErrInsufficientStock)
			}
			if err := c.saveStock(ctx, tx, p, &effects); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.mapTxError(err)
	}

	c.afterCommit(ctx, &effects)
	return nil
}

func (c *inventoryUseCaseImpl) CreateProduct(ctx context.Context, name string, quantity int) (uuid.UUID, error) {
	p, err := product.NewProduct(c.policy, name, quantity, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var effects txEffects
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		effects.reset()
		if err := tx.Products().Create(ctx, p); err != nil {
			return err
		}
		if c.policy.IsLowStock(p.Available()) {
			return c.emitLowStock(ctx, tx, p, &effects)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, c.mapTxError(err)
	}

	c.afterCommit(ctx, &effects)
	return p.ID(), nil
}

func (c *inventoryUseCaseImpl) Restock(ctx context.Context, productID uuid.UUID, quantity int) error {
	var effects txEffects

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		effects.reset()

		products, err := tx.Products().LockByIDs(ctx, []uuid.UUID{productID})
		if err != nil {
			return err
		}
		p, ok := products[productID]
		if !ok {
			return errs.ErrProductNotFound
		}
		if err := p.Restock(quantity); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return c.saveStock(ctx, tx, p, &effects)
	})
	if err != nil {
		return c.mapTxError(err)
	}

	c.afterCommit(ctx, &effects)
	return nil
}

// SweepExpired releases one batch of expired reservations, each in its own transaction.
// A failure on one reservation is logged and leaves it for the next run.
func (c *inventoryUseCaseImpl) SweepExpired(ctx context.Context, now time.Time) (SweepResult, error) {
	var expired []*reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.Reservations().ListExpired(ctx, now, c.sweepBatchSize)
		return err
	})
	if err != nil {
		return SweepResult{}, c.mapTxError(err)
	}

	result := SweepResult{Scanned: len(expired)}
	for _, res := range expired {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var (
			released bool
			effects  txEffects
		)
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			effects.reset()
			var err error
			released, err = c.returnHold(ctx, tx, res.ProductID(), res.ID(), &effects)
			return err
		})
		if err != nil {
			result.Failed++
			slog.Error("failed to release expired reservation",
				"reservation_id", res.ID().String(),
				"product_id", res.ProductID().String(),
				"error", err.Error())
			continue
		}
		if released {
			result.Released++
			c.afterCommit(ctx, &effects)
		}
	}
	return result, nil
}

// returnHold locks the product before deleting the reservation so a sweep and a
// manual release serialize on the row lock; only the deleting caller credits stock.
func (c *inventoryUseCaseImpl) returnHold(ctx context.Context, tx shared.Tx, productID, reservationID uuid.UUID, effects *txEffects) (bool, error) {
	products, err := tx.Products().LockByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return false, err
	}

	deleted, ok, err := tx.Reservations().Delete(ctx, reservationID)
	if err != nil || !ok {
		return false, err
	}

	p, found := products[deleted.ProductID()]
	if !found {
		return false, errs.ErrProductNotFound
	}
	if err := p.ReturnHold(deleted.Quantity()); err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.saveStock(ctx, tx, p, effects); err != nil {
		return false, err
	}
	return true, nil
}

func (c *inventoryUseCaseImpl) saveStock(ctx context.Context, tx shared.Tx, p *product.Product, effects *txEffects) error {
	lowStock := p.Reclassify(c.policy, c.clock.Now())
	if err := tx.Products().SaveStock(ctx, p); err != nil {
		return err
	}
	effects.touched = append(effects.touched, p.ID())
	if lowStock {
		return c.emitLowStock(ctx, tx, p, effects)
	}
	return nil
}

func (c *inventoryUseCaseImpl) emitLowStock(ctx context.Context, tx shared.Tx, p *product.Product, effects *txEffects) error {
	payload, err := json.Marshal(map[string]any{
		"type":       "low_stock",
		"product_id": p.ID(),
		"name":       p.Name(),
		"available":  p.Available(),
		"threshold":  c.policy.LowStockThreshold,
	})
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, lowStockJobKind, lowStockJobTopic, payload, c.clock.Now()); err != nil {
		return err
	}
	effects.lowStock = append(effects.lowStock, p)
	return nil
}

func (c *inventoryUseCaseImpl) afterCommit(ctx context.Context, effects *txEffects) {
	for _, p := range effects.lowStock {
		slog.Warn("product is low on stock",
			"product_id", p.ID().String(),
			"name", p.Name(),
			"available", p.Available(),
			"threshold", c.policy.LowStockThreshold)
	}

	if len(effects.touched) == 0 {
		return
	}
	if err := c.cache.Invalidate(ctx, uniqueIDs(effects.touched)...); err != nil {
		slog.Warn("failed to invalidate stock cache", "error", err.Error())
	}
}

func (c *inventoryUseCaseImpl) mapTxError(err error) error {
	for _, known := range []error{
		errs.ErrProductNotFound,
		errs.ErrInsufficientStock,
		errs.ErrReservationExpired,
		errs.ErrReservationMismatch,
		errs.ErrDomainValidation,
		errs.ErrTransientFailure,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func sameTotals(a, b map[uuid.UUID]int) bool {
	if len(a) != len(b) {
		return false
	}
	for id, qty := range a {
		if b[id] != qty {
			return false
		}
	}
	return true
}
