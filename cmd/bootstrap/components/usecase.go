package components

import (
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBillingDefaults,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewChargeUseCase,
		commands.NewDiscountUseCase,
		commands.NewInvoiceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewBillingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBillingDefaults(cfg config.Config) (shared.BillingDefaults, error) {
	rate, err := cfg.Billing.DefaultVATRate()
	if err != nil {
		return shared.BillingDefaults{}, err
	}
	return shared.BillingDefaults{VATRate: rate}, nil
}
