//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	services := &reservation.Services{Clock: clock.NewMockClock(now), TTL: 30 * time.Minute}
	session, err := reservation.NewSessionID("cart-42")
	require.NoError(t, err)
	productID := uuid.New()

	t.Run("success: expiry is creation time plus ttl", func(t *testing.T) {
		r, err := reservation.NewReservation(services, productID, session, 3)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, productID, r.ProductID())
		assert.Equal(t, 3, r.Quantity())
		assert.Equal(t, "cart-42", r.SessionID().String())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, now.Add(30*time.Minute), r.ExpiresAt())
	})

	testCases := []struct {
		name      string
		services  *reservation.Services
		productID uuid.UUID
		session   reservation.SessionID
		quantity  int
		errIs     error
	}{
		{name: "nil product", services: services, productID: uuid.Nil, session: session, quantity: 1, errIs: reservation.ErrInvalidProductID},
		{name: "empty session", services: services, productID: productID, session: reservation.SessionID{}, quantity: 1, errIs: reservation.ErrEmptySession},
		{name: "zero quantity", services: services, productID: productID, session: session, quantity: 0, errIs: reservation.ErrNonPositiveAmount},
		{
			name:      "zero ttl",
			services:  &reservation.Services{Clock: services.Clock, TTL: 0},
			productID: productID, session: session, quantity: 1,
			errIs: reservation.ErrInvalidTTL,
		},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := reservation.NewReservation(tc.services, tc.productID, tc.session, tc.quantity)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestReservation_IsExpired(t *testing.T) {
	expiresAt := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	session, _ := reservation.NewSessionID("cart-1")
	r := reservation.ReconstructReservation(uuid.New(), uuid.New(), 2, session, expiresAt, expiresAt.Add(-30*time.Minute))

	assert.False(t, r.IsExpired(expiresAt.Add(-time.Second)))
	assert.True(t, r.IsExpired(expiresAt), "deadline itself counts as expired")
	assert.True(t, r.IsExpired(expiresAt.Add(time.Second)))
}

func TestNewSessionID(t *testing.T) {
	s, err := reservation.NewSessionID("  cart-7  ")
	require.NoError(t, err)
	assert.Equal(t, "cart-7", s.String())

	_, err = reservation.NewSessionID("   ")
	assert.ErrorIs(t, err, reservation.ErrEmptySession)

	long := make([]byte, reservation.MaxSessionIDLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = reservation.NewSessionID(string(long))
	assert.ErrorIs(t, err, reservation.ErrSessionTooLong)
}
