package bootstrap

import (
	"context"
	"log/slog"

	"slot-booking/internal/infra/outbox"
	"slot-booking/internal/infra/scheduler"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterJobs),
)

func NewScheduler(lc fx.Lifecycle, logger *slog.Logger) *scheduler.Scheduler {
	s := scheduler.New(logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s
}

func RegisterJobs(s *scheduler.Scheduler, cfg config.Config, reconcile commands.ReconcileCommands, relay *outbox.Relay, logger *slog.Logger) error {
	jobs := []scheduler.Job{
		{
			Name:     "ledger-reconcile",
			Schedule: cfg.Ledger.ReconcileSchedule,
			Run: func(ctx context.Context) error {
				report, err := reconcile.ReconcileLedger(ctx)
				if err != nil {
					return err
				}
				if report.Reserved+report.Released+report.Failed > 0 {
					logger.Warn("ledger reconciled",
						"from", report.From,
						"reserved", report.Reserved,
						"released", report.Released,
						"failed", report.Failed)
				}
				return nil
			},
		},
		{
			Name:     "notification-relay",
			Schedule: cfg.Notification.RelaySchedule,
			Run: func(ctx context.Context) error {
				_, err := relay.RunOnce(ctx)
				return err
			},
		},
	}
	for _, job := range jobs {
		if err := s.Register(job); err != nil {
			return err
		}
	}
	return nil
}
