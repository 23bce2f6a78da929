//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericDecimal(t *testing.T) {
	cases := []string{"0", "3000", "10080.00", "1234.5678", "-0.01", "0.125"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)
			got, err := pgconv.DecimalFromNumeric(pgconv.NumericFromDecimal(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}

	t.Run("scaled integer", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(1008000), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "10080.00", got.StringFixed(2))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
		_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		require.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})

	t.Run("nullable", func(t *testing.T) {
		got, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.False(t, pgconv.NumericPtrFromDecimal(nil).Valid)
	})
}

func TestUUIDAndTime(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, &now, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
}
