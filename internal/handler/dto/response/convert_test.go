//go:build unit

package response_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCalculationView_RatesKeepPrecision(t *testing.T) {
	pct := money.MustParse("12.5")
	d, err := billing.NewDiscount("Corporate", &pct, nil, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	v := &queries.CalculationView{
		BookingID: uuid.New(),
		Breakdown: queries.NewBreakdownView(billing.Breakdown{
			RoomTotal:           money.MustParse("1000"),
			Subtotal:            money.MustParse("1000"),
			DiscountAmount:      money.MustParse("125"),
			AmountAfterDiscount: money.MustParse("875"),
			VATRate:             money.MustParse("0.125"),
			VATAmount:           money.MustParse("109.375"),
			FinalTotal:          money.MustParse("984.375"),
			Balance:             money.MustParse("984.375"),
		}),
		Discount: queries.NewDiscountView(d),
	}

	res, err := response.FromCalculationView(v)
	require.NoError(t, err)

	assert.Equal(t, "0.125", res.Breakdown.VATRate)
	assert.Equal(t, "109.38", res.Breakdown.VATAmount)
	assert.Equal(t, "984.38", res.Breakdown.FinalTotal)
	require.NotNil(t, res.Discount)
	require.NotNil(t, res.Discount.Percentage)
	assert.Equal(t, "12.5", *res.Discount.Percentage)
	assert.Nil(t, res.Discount.FixedAmount)
}

func TestFromInvoiceView_VATRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
		want string
	}{
		{"three places", "0.075", "0.075"},
		{"two places", "0.12", "0.12"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &queries.InvoiceView{
				ID:        uuid.New(),
				BookingID: uuid.New(),
				Breakdown: queries.BreakdownView{
					VATRate:    money.MustParse(tt.rate),
					FinalTotal: money.MustParse("100"),
				},
				Status:    "complete",
				CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			}

			res, err := response.FromInvoiceView(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Breakdown.VATRate)
			assert.Equal(t, "100.00", res.Breakdown.FinalTotal)
			assert.Equal(t, "2025-06-01T12:00:00Z", res.CreatedAt)
		})
	}
}

func TestFromDiscountView_FixedAmountStaysMoney(t *testing.T) {
	fixed := money.MustParse("250.5")
	d, err := billing.NewDiscount("Voucher", nil, &fixed, time.Now())
	require.NoError(t, err)

	res, err := response.FromDiscountView(queries.NewDiscountView(d))
	require.NoError(t, err)

	assert.Nil(t, res.Percentage)
	require.NotNil(t, res.FixedAmount)
	assert.Equal(t, "250.50", *res.FixedAmount)
}
