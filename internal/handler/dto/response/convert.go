package response

import (
	"time"

	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Envelope wraps every successful response body.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// wireConverters render read models for JSON: money as two-place strings,
// ids as canonical uuids and instants as RFC 3339 UTC.
var wireConverters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return money.Format(src.(decimal.Decimal)), nil
		},
	},
	{
		SrcType: &decimal.Decimal{},
		DstType: (*string)(nil),
		Fn: func(src any) (any, error) {
			d := src.(*decimal.Decimal)
			if d == nil {
				return (*string)(nil), nil
			}
			s := money.Format(*d)
			return &s, nil
		},
	},
	{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
	{
		SrcType: &uuid.UUID{},
		DstType: (*string)(nil),
		Fn: func(src any) (any, error) {
			id := src.(*uuid.UUID)
			if id == nil {
				return (*string)(nil), nil
			}
			s := id.String()
			return &s, nil
		},
	},
	{
		SrcType: time.Time{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return formatTime(src.(time.Time)), nil
		},
	},
	{
		SrcType: &time.Time{},
		DstType: (*string)(nil),
		Fn: func(src any) (any, error) {
			t := src.(*time.Time)
			if t == nil {
				return (*string)(nil), nil
			}
			s := formatTime(*t)
			return &s, nil
		},
	},
}

// Rates and percentages are ratios, not money, so they keep every place they
// were given. wireConverters cannot tell them apart from amounts.
func formatRate(d decimal.Decimal) string {
	return d.String()
}

func formatRatePtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := formatRate(*d)
	return &s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func copyInto(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true, Converters: wireConverters}); err != nil {
		return errs.Wrap(err, "build response")
	}
	return nil
}
