package components

import (
	"slot-booking/internal/infra/outbox"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(
		outbox.NewRelay,
	),
)
