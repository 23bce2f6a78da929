package bootstrap

import (
	"context"

	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/infra/gormstore"
	"hotel-booking-engine/internal/infra/uow"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the store selected by STORE_DRIVER.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config) (shared.UnitOfWork, error) {
	var (
		unit    shared.UnitOfWork
		cleanup func()
	)

	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		gdb, closeFn, err := gormstore.Open(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		unit, cleanup = gormstore.NewUoW(gdb), closeFn
	default:
		pool, closeFn, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		unit, cleanup = uow.NewPostgresUoW(pool), closeFn
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return unit, nil
}
