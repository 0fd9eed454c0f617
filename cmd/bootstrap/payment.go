package bootstrap

import (
	"log/slog"

	"slot-booking/internal/infra/payment/cashfree"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *cashfree.Client {
	if !cfg.Payment.Configured() {
		logger.Warn("payment gateway credentials missing, orders run in demo mode")
	}
	return cashfree.NewClient(cfg.Payment, logger)
}
