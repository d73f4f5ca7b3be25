package converter

import (
	"inventory-ledger/internal/domain/reservation"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"
	"inventory-ledger/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		ProductID: res.ProductID(),
		Quantity:  int32(res.Quantity()), // #nosec G115 -- bounded by product.MaxQuantity
		SessionID: res.SessionID().String(),
		ExpiresAt: pgconv.TimeToPgtype(res.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationFromInfra(row sqlc.InventoryReservations) (*reservation.Reservation, error) {
	sessionID, err := reservation.NewSessionID(row.SessionID)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.ProductID,
		int(row.Quantity),
		sessionID,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
