//go:build unit

package gormstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/gormstore"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/shared"
	"hotel-booking-engine/tests/common/builder"
	"hotel-booking-engine/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	uow shared.UnitOfWork
	ctx context.Context
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	_, s.uow = dbtest.NewSQLite(s.T())
	s.ctx = context.Background()
}

func (s *StoreTestSuite) storedBooking() *booking.Booking {
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.Rooms[0].RoomID = dbtest.Room101
	}).BuildStored()
	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	}))
	return b
}

func (s *StoreTestSuite) load(id uuid.UUID) *booking.Booking {
	var b *booking.Booking
	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Bookings().FindByID(ctx, id)
		return err
	}))
	return b
}

func (s *StoreTestSuite) TestBooking_RoundTrip() {
	want := s.storedBooking()

	got := s.load(want.ID())
	s.Equal(want.Reference(), got.Reference())
	s.Equal(want.Status(), got.Status())
	s.True(want.TotalAmount().Equal(got.TotalAmount()))
	s.Equal(want.Version(), got.Version())
	s.Require().Len(got.Rooms(), 1)
	s.Equal(dbtest.Room101, got.Rooms()[0].RoomID())
}

func (s *StoreTestSuite) TestBooking_NotFound() {
	err := s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Bookings().FindByID(ctx, uuid.New())
		return err
	})
	s.True(infra.IsKind(err, infra.KindNotFound), err)
}

func (s *StoreTestSuite) TestBooking_UpdateWithOldVersionIsStale() {
	created := s.storedBooking()
	first := s.load(created.ID())
	second := s.load(created.ID())

	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Update(ctx, first)
	}))
	s.Equal(created.Version()+1, first.Version())

	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Update(ctx, second)
	})
	s.True(infra.IsKind(err, infra.KindStale), err)
	s.Equal(created.Version()+1, s.load(created.ID()).Version())
}

func (s *StoreTestSuite) TestInvoice_SecondForBookingIsDuplicate() {
	b := s.storedBooking()
	bd, err := billing.Calculate(billing.Input{Aggregation: billing.Aggregate(b, nil), VATRate: money.MustParse("0.125")})
	s.Require().NoError(err)

	create := func() error {
		return s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Invoices().Create(ctx, billing.NewInvoice(b.ID(), bd, billing.MethodCash, nil, b.CreatedAt()))
		})
	}
	s.Require().NoError(create())

	err = create()
	s.True(infra.IsKind(err, infra.KindDuplicateKey), err)
	s.Equal(errs.CodeConflict, errs.KindOf(shared.RepoErr(err, nil)))

	var inv *billing.Invoice
	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		inv, ferr = tx.Invoices().FindByBooking(ctx, b.ID())
		return ferr
	}))
	s.Equal("0.125", inv.Breakdown().VATRate.String())
}

func (s *StoreTestSuite) TestHolds_PutIsUpsert() {
	b := s.storedBooking()
	short, err := booking.NewStay(b.Stay().CheckIn(), b.Stay().CheckIn().AddDate(0, 0, 1))
	s.Require().NoError(err)

	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Holds().Put(ctx, availability.NewHold(dbtest.Room101, b.ID(), b.Stay())); err != nil {
			return err
		}
		return tx.Holds().Put(ctx, availability.NewHold(dbtest.Room101, b.ID(), short))
	}))

	var holds []availability.Hold
	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		holds, lerr = tx.Holds().ListByRoom(ctx, dbtest.Room101)
		return lerr
	}))
	s.Require().Len(holds, 1)
	s.True(holds[0].Stay.CheckOut().Equal(short.CheckOut()))
}

func (s *StoreTestSuite) TestWithin_RollsBackOnError() {
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.Rooms[0].RoomID = dbtest.Room102
	}).BuildStored()
	boom := errs.New("abort")

	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	err = s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, ferr := tx.Bookings().FindByID(ctx, b.ID())
		return ferr
	})
	s.True(infra.IsKind(err, infra.KindNotFound), err)
}

func TestOpen_UnreachablePath(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "missing", "dir", "hotel.db")

	db, cleanup, err := gormstore.Open(config.SQLiteConfig{DSN: dsn})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
	assert.Nil(t, db)
	assert.Nil(t, cleanup)
}
