package bootstrap

import (
	"slot-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything except the HTTP surface and background jobs.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	CatalogModule,
	PaymentModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	MessagingModule,
	SchedulerModule,
	components.OutboxModule,
	components.HandlerModule,
)
