package bootstrap

import (
	"hotel-booking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	ArchiveModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
