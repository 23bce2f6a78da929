package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	Statuses() []StatusView
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) Statuses() []StatusView {
	all := booking.AllStatuses()
	out := make([]StatusView, 0, len(all))
	for _, s := range all {
		out = append(out, StatusView{StatusID: s.ID(), StatusName: s.String()})
	}
	return out
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return shared.RepoErr(err, shared.ErrBookingNotFound)
		}
		charges, err := tx.Charges().ListByBooking(ctx, id)
		if err != nil {
			return shared.RepoErr(err, nil)
		}
		payments, err := tx.Payments().ListByBooking(ctx, id)
		if err != nil {
			return shared.RepoErr(err, nil)
		}
		view = NewBookingView(b, charges, payments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
