//go:build unit

package money_test

import (
	"testing"

	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := money.Parse("1500.5")
	require.NoError(t, err)
	assert.Equal(t, "1500.50", money.Format(d))

	_, err = money.Parse("12,00")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = money.ParseNonNegative("-1")
	require.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestRound(t *testing.T) {
	cases := map[string]string{
		"10.005":   "10.01",
		"10.004":   "10.00",
		"0.125":    "0.13",
		"1080":     "1080.00",
		"33.33333": "33.33",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, money.Format(money.Round(money.MustParse(in))))
		})
	}
}

func TestClampZero(t *testing.T) {
	assert.True(t, money.ClampZero(money.MustParse("-5")).IsZero())
	assert.Equal(t, "5.00", money.Format(money.ClampZero(money.MustParse("5"))))
}
