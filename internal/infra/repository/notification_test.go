//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/infra/repository"
	sqlc "inventory-ledger/internal/infra/sqlc/generated"
	repositorymock "inventory-ledger/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	payload := []byte(`{"type":"low_stock"}`)

	t.Run("success: job is queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
				assert.Equal(t, "email", arg.Kind)
				assert.Equal(t, "low_stock", arg.Topic)
				assert.Equal(t, "queued", arg.Status)
				assert.JSONEq(t, string(payload), string(arg.Payload))
				assert.True(t, arg.RunAt.Time.Equal(runAt))
				return nil
			})

		require.NoError(t, repo.CreateJob(ctx, "email", "low_stock", payload, runAt))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repo.CreateJob(ctx, "email", "low_stock", payload, runAt)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
