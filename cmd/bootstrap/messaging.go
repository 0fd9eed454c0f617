package bootstrap

import (
	"context"
	"log/slog"

	"slot-booking/internal/infra/mq"
	"slot-booking/internal/infra/outbox"
	"slot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher connects to RabbitMQ when NOTIFY_AMQP_URL is set and falls
// back to logging notifications otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	var publisher outbox.Publisher
	if cfg.Notification.AMQPURL == "" {
		logger.Warn("no message broker configured, notifications are logged only")
		publisher = mq.NewLogPublisher(logger)
	} else {
		p, err := mq.NewAMQPPublisher(cfg.Notification.AMQPURL, cfg.Notification.Exchange, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to message broker", "exchange", cfg.Notification.Exchange)
		publisher = p
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
