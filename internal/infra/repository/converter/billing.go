package converter

import (
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ChargeRow struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	BookingRoomID pgtype.UUID
	Category      string
	Description   string
	UnitPrice     pgtype.Numeric
	Quantity      int32
	Status        string
	CreatedAt     time.Time
	ResolvedAt    pgtype.Timestamptz
}

func ChargeToRow(c *billing.Charge) ChargeRow {
	return ChargeRow{
		ID:            c.ID(),
		BookingID:     c.BookingID(),
		BookingRoomID: pgconv.UUIDPtrToPgtype(c.BookingRoomID()),
		Category:      c.Category(),
		Description:   c.Description(),
		UnitPrice:     pgconv.NumericFromDecimal(c.UnitPrice()),
		Quantity:      int32(c.Quantity()),
		Status:        string(c.Status()),
		CreatedAt:     c.CreatedAt(),
		ResolvedAt:    pgconv.TimePtrToPgtype(c.ResolvedAt()),
	}
}

func ChargeFromRow(row ChargeRow) (*billing.Charge, error) {
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	status, err := billing.ParseChargeStatus(row.Status)
	if err != nil {
		return nil, err
	}
	c := billing.ReconstructCharge(
		row.ID,
		row.BookingID,
		pgconv.UUIDPtrFromPgtype(row.BookingRoomID),
		row.Category,
		row.Description,
		price,
		int(row.Quantity),
		status,
		row.CreatedAt.UTC(),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	)
	return c, nil
}

type DiscountRow struct {
	ID          uuid.UUID
	Name        string
	Percentage  pgtype.Numeric
	FixedAmount pgtype.Numeric
	CreatedAt   time.Time
}

func DiscountFromRow(row DiscountRow) (*billing.Discount, error) {
	pct, err := pgconv.DecimalPtrFromNumeric(row.Percentage)
	if err != nil {
		return nil, err
	}
	fixed, err := pgconv.DecimalPtrFromNumeric(row.FixedAmount)
	if err != nil {
		return nil, err
	}
	return billing.ReconstructDiscount(row.ID, row.Name, pct, fixed, row.CreatedAt.UTC())
}

// InvoiceRow flattens the frozen breakdown into columns.
type InvoiceRow struct {
	ID                  uuid.UUID
	BookingID           uuid.UUID
	DiscountID          pgtype.UUID
	RoomTotal           pgtype.Numeric
	ChargeTotal         pgtype.Numeric
	Subtotal            pgtype.Numeric
	DiscountAmount      pgtype.Numeric
	AmountAfterDiscount pgtype.Numeric
	VATRate             pgtype.Numeric
	VATAmount           pgtype.Numeric
	FinalTotal          pgtype.Numeric
	Downpayment         pgtype.Numeric
	ExtensionPayments   pgtype.Numeric
	Balance             pgtype.Numeric
	PaymentMethod       string
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func InvoiceToRow(inv *billing.Invoice) InvoiceRow {
	bd := inv.Breakdown()
	return InvoiceRow{
		ID:                  inv.ID(),
		BookingID:           inv.BookingID(),
		DiscountID:          pgconv.UUIDPtrToPgtype(inv.DiscountID()),
		RoomTotal:           pgconv.NumericFromDecimal(bd.RoomTotal),
		ChargeTotal:         pgconv.NumericFromDecimal(bd.ChargeTotal),
		Subtotal:            pgconv.NumericFromDecimal(bd.Subtotal),
		DiscountAmount:      pgconv.NumericFromDecimal(bd.DiscountAmount),
		AmountAfterDiscount: pgconv.NumericFromDecimal(bd.AmountAfterDiscount),
		VATRate:             pgconv.NumericFromDecimal(bd.VATRate),
		VATAmount:           pgconv.NumericFromDecimal(bd.VATAmount),
		FinalTotal:          pgconv.NumericFromDecimal(bd.FinalTotal),
		Downpayment:         pgconv.NumericFromDecimal(bd.Downpayment),
		ExtensionPayments:   pgconv.NumericFromDecimal(bd.ExtensionPayments),
		Balance:             pgconv.NumericFromDecimal(bd.Balance),
		PaymentMethod:       string(inv.PaymentMethod()),
		Status:              string(inv.Status()),
		CreatedAt:           inv.CreatedAt(),
		UpdatedAt:           inv.UpdatedAt(),
	}
}

func InvoiceFromRow(row InvoiceRow) (*billing.Invoice, error) {
	var bd billing.Breakdown
	values := []pgtype.Numeric{
		row.RoomTotal, row.ChargeTotal, row.Subtotal, row.DiscountAmount, row.AmountAfterDiscount,
		row.VATRate, row.VATAmount, row.FinalTotal, row.Downpayment, row.ExtensionPayments, row.Balance,
	}
	targets := []*decimal.Decimal{
		&bd.RoomTotal, &bd.ChargeTotal, &bd.Subtotal, &bd.DiscountAmount, &bd.AmountAfterDiscount,
		&bd.VATRate, &bd.VATAmount, &bd.FinalTotal, &bd.Downpayment, &bd.ExtensionPayments, &bd.Balance,
	}
	for i, v := range values {
		d, err := pgconv.DecimalFromNumeric(v)
		if err != nil {
			return nil, err
		}
		*targets[i] = d
	}

	status, err := billing.ParseInvoiceStatus(row.Status)
	if err != nil {
		return nil, err
	}
	method, err := billing.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return billing.ReconstructInvoice(
		row.ID,
		row.BookingID,
		pgconv.UUIDPtrFromPgtype(row.DiscountID),
		bd,
		method,
		status,
		row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
	), nil
}

type PaymentRow struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	Kind       string
	Amount     pgtype.Numeric
	Method     string
	RecordedBy uuid.UUID
	CreatedAt  time.Time
}

func PaymentFromRow(row PaymentRow) (*billing.Payment, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	method, err := billing.ParsePaymentMethod(row.Method)
	if err != nil {
		return nil, err
	}
	return billing.ReconstructPayment(row.ID, row.BookingID, billing.PaymentKind(row.Kind), amount, method, row.RecordedBy, row.CreatedAt.UTC()), nil
}
