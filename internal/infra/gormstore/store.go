// Package gormstore is the embedded SQLite store. A single connection
// serializes every transaction, which stands in for row and advisory locks.
package gormstore

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var errTransaction = errs.Mark(errs.New("sqlite transaction failed"), errs.ErrStoreUnavailable)

func Open(cfg config.SQLiteConfig) (*gorm.DB, func(), error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        cfg.DSN,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to access sqlite pool")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close sqlite", "error", err.Error())
		}
	}
	return db, cleanup, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return errs.Wrap(err, "failed to migrate sqlite schema")
	}
	return nil
}

type UoW struct {
	db *gorm.DB
}

func NewUoW(db *gorm.DB) shared.UnitOfWork {
	return &UoW{db: db}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

// WithinReadOnly runs fn in an ordinary transaction; SQLite has no read-only mode per transaction.
func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(ctx, &gormTx{db: tx})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return errs.Mark(err, errTransaction)
	}
	return err
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) Bookings() shared.BookingRepository   { return &bookingRepository{db: t.db} }
func (t *gormTx) Rooms() shared.RoomCatalog            { return &roomCatalog{db: t.db} }
func (t *gormTx) Holds() shared.HoldRepository         { return &holdRepository{db: t.db} }
func (t *gormTx) Charges() shared.ChargeRepository     { return &chargeRepository{db: t.db} }
func (t *gormTx) Discounts() shared.DiscountRepository { return &discountRepository{db: t.db} }
func (t *gormTx) Invoices() shared.InvoiceRepository   { return &invoiceRepository{db: t.db} }
func (t *gormTx) Payments() shared.PaymentRepository   { return &paymentRepository{db: t.db} }
func (t *gormTx) Events() shared.EventRepository       { return &eventRepository{db: t.db} }

func wrapErr(msg string, err error) error {
	kind := infra.KindDBFailure
	var se *sqlite.Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = infra.KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		kind = infra.KindDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		kind = infra.KindForeignKeyViolated
	case errors.As(err, &se):
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			kind = infra.KindDuplicateKey
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			kind = infra.KindForeignKeyViolated
		}
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}
