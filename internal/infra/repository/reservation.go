package repository

import (
	"context"
	"time"

	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/infra/repository/converter"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"
	"inventory-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InventoryReservations, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InventoryReservations, error)
	ListReservationsBySession(ctx context.Context, db sqlc.DBTX, sessionID string) ([]sqlc.InventoryReservations, error)
	ListExpiredReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredReservationsParams) ([]sqlc.InventoryReservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return toDomainReservation(row)
}

// Delete removes the reservation and returns it. The boolean is false when
// another transaction got there first; only the deleting caller may credit stock.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, bool, error) {
	row, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to delete reservation", err)
	}
	res, err := toDomainReservation(row)
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

func (r *ReservationRepository) ListBySession(ctx context.Context, sessionID reservation.SessionID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsBySession(ctx, r.db, sessionID.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session reservations", err)
	}
	return toDomainReservations(rows)
}

func (r *ReservationRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListExpiredReservations(ctx, r.db, sqlc.ListExpiredReservationsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: int32(limit), // #nosec G115 -- validated by config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired reservations", err)
	}
	return toDomainReservations(rows)
}

func toDomainReservation(row sqlc.InventoryReservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func toDomainReservations(rows []sqlc.InventoryReservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := toDomainReservation(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
