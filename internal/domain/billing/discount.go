package billing

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDiscountName       = errs.Mark(errs.New("discount name is required"), errs.ErrValidation)
	ErrDiscountAmount     = errs.Mark(errs.New("fixed discount cannot be negative"), errs.ErrValidation)
	ErrDiscountPercent    = errs.Mark(errs.New("percentage discount must be between 0 and 100"), errs.ErrValidation)
	ErrDiscountBothSet    = errs.Mark(errs.New("discount can only be either fixed amount or percentage, not both"), errs.ErrValidation)
	ErrDiscountNeitherSet = errs.Mark(errs.New("discount must have either fixed amount or percentage"), errs.ErrValidation)
	hundred               = decimal.NewFromInt(100)
)

// Discount carries exactly one of a percentage or a fixed amount.
type Discount struct {
	id          uuid.UUID
	name        string
	percentage  *decimal.Decimal
	fixedAmount *decimal.Decimal
	createdAt   time.Time
}

func NewDiscount(name string, percentage, fixedAmount *decimal.Decimal, now time.Time) (*Discount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDiscountName
	}
	if err := validateDiscountValue(percentage, fixedAmount); err != nil {
		return nil, err
	}
	return &Discount{
		id:          uuid.New(),
		name:        name,
		percentage:  copyDecimal(percentage),
		fixedAmount: copyDecimal(fixedAmount),
		createdAt:   now,
	}, nil
}

// ReconstructDiscount re-checks the exactly-one-of invariant so a corrupt row
// cannot enter billing.
func ReconstructDiscount(id uuid.UUID, name string, percentage, fixedAmount *decimal.Decimal, createdAt time.Time) (*Discount, error) {
	if err := validateDiscountValue(percentage, fixedAmount); err != nil {
		return nil, err
	}
	return &Discount{
		id:          id,
		name:        name,
		percentage:  copyDecimal(percentage),
		fixedAmount: copyDecimal(fixedAmount),
		createdAt:   createdAt,
	}, nil
}

func validateDiscountValue(percentage, fixedAmount *decimal.Decimal) error {
	switch {
	case percentage != nil && fixedAmount != nil:
		return ErrDiscountBothSet
	case percentage == nil && fixedAmount == nil:
		return ErrDiscountNeitherSet
	case percentage != nil && (percentage.IsNegative() || percentage.GreaterThan(hundred)):
		return ErrDiscountPercent
	case fixedAmount != nil && fixedAmount.IsNegative():
		return ErrDiscountAmount
	}
	return nil
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func (d *Discount) ID() uuid.UUID                 { return d.id }
func (d *Discount) Name() string                  { return d.name }
func (d *Discount) Percentage() *decimal.Decimal  { return copyDecimal(d.percentage) }
func (d *Discount) FixedAmount() *decimal.Decimal { return copyDecimal(d.fixedAmount) }
func (d *Discount) CreatedAt() time.Time          { return d.createdAt }
func (d *Discount) IsPercentage() bool            { return d.percentage != nil }
func (d *Discount) IsFixed() bool                 { return d.fixedAmount != nil }

// AmountFor returns the discount taken off subtotal, within [0, subtotal].
func (d *Discount) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	if d.IsPercentage() {
		return subtotal.Mul(*d.percentage).Div(hundred)
	}
	return money.Min(*d.fixedAmount, subtotal)
}

// ResolveDiscount is AmountFor that also accepts "no discount".
func ResolveDiscount(subtotal decimal.Decimal, d *Discount) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return d.AmountFor(subtotal)
}

// ApplyDiscount returns subtotal minus its discount, never negative.
func ApplyDiscount(subtotal decimal.Decimal, d *Discount) decimal.Decimal {
	return money.ClampZero(subtotal.Sub(ResolveDiscount(subtotal, d)))
}
