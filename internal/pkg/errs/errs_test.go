//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"inventory-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("lock timeout")
		marked := errs.Mark(cause, errs.ErrTransientFailure)

		assert.True(t, errs.Is(marked, errs.ErrTransientFailure))
		assert.True(t, errs.Is(marked, cause))
		assert.False(t, errs.Is(marked, errs.ErrProductNotFound))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrReservationExpired, errs.Mark(nil, errs.ErrReservationExpired))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	wrapped := errs.Wrap(errs.ErrProductNotFound, "lock product")
	require.Error(t, wrapped)
	assert.True(t, errs.Is(wrapped, errs.ErrProductNotFound))
	assert.Contains(t, wrapped.Error(), "lock product")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
