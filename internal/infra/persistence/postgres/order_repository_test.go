package postgres

import (
	"testing"

	domainerrors "taponn/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderWriteError(t *testing.T) {
	t.Run("check violation is a validation failure", func(t *testing.T) {
		err := orderWriteError(&pgconn.PgError{Code: pgCheckViolation, ConstraintName: "chk_orders_total_amount"}, "failed to update order")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("other errors stay database errors", func(t *testing.T) {
		err := orderWriteError(errors.New("connection reset"), "failed to create order")

		var dbErr *domainerrors.DatabaseExecuteError
		require.ErrorAs(t, err, &dbErr)
		assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
