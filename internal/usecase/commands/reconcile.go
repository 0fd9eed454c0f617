package commands

//go:generate mockgen -source=reconcile.go -destination=../../../tests/mock/commands/reconcile_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/shared"
)

type ReconcileReport struct {
	From     string
	Reserved int
	Released int
	Failed   int
}

type ReconcileCommands interface {
	// ReconcileLedger re-reserves slots of confirmed orders missing from the
	// ledger and releases package-scoped slots no confirmed order owns.
	// Global-scope records are never touched.
	ReconcileLedger(ctx context.Context) (*ReconcileReport, error)
}

type reconcileCommandsImpl struct {
	ledger  shared.SlotLedger
	auditor shared.LedgerAuditor
	clock   clock.Clock
	loc     *time.Location
	batch   int32
	metrics *metrics.Registry
	logger  *slog.Logger
}

func NewReconcileCommands(
	ledger shared.SlotLedger,
	auditor shared.LedgerAuditor,
	clk clock.Clock,
	cfg config.Config,
	m *metrics.Registry,
	logger *slog.Logger,
) ReconcileCommands {
	return &reconcileCommandsImpl{
		ledger:  ledger,
		auditor: auditor,
		clock:   clk,
		loc:     cfg.Server.Location(),
		batch:   cfg.Ledger.ReconcileBatch,
		metrics: m,
		logger:  logger,
	}
}

func (r *reconcileCommandsImpl) ReconcileLedger(ctx context.Context) (*ReconcileReport, error) {
	from := slot.DateOf(clock.Today(r.clock, r.loc))
	report := &ReconcileReport{From: from.String()}

	missing, err := r.auditor.UnreservedConfirmed(ctx, from, r.batch)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list unreserved confirmed orders"), errs.ErrDatabaseOperationFailed)
	}
	for _, e := range missing {
		if err := r.ledger.Reserve(ctx, e.Key, e.SlotID); err != nil {
			report.Failed++
			r.logger.Warn("reconcile reserve failed", "key", e.Key.String(), "slot_id", e.SlotID, "error", err.Error())
			continue
		}
		report.Reserved++
		r.metrics.ReconcileRepairs.WithLabelValues("reserve").Inc()
		r.logger.Info("reconcile reserved missing slot", "order_id", e.OrderID, "key", e.Key.String(), "slot_id", e.SlotID)
	}

	orphans, err := r.auditor.Orphaned(ctx, from, r.batch)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list orphaned slot reservations"), errs.ErrDatabaseOperationFailed)
	}
	for _, e := range orphans {
		if e.Key.Scope.IsGlobal() {
			continue
		}
		if err := r.ledger.Release(ctx, e.Key, e.SlotID); err != nil {
			report.Failed++
			r.logger.Warn("reconcile release failed", "key", e.Key.String(), "slot_id", e.SlotID, "error", err.Error())
			continue
		}
		report.Released++
		r.metrics.ReconcileRepairs.WithLabelValues("release").Inc()
		r.logger.Info("reconcile released orphaned slot", "key", e.Key.String(), "slot_id", e.SlotID)
	}

	if report.Reserved+report.Released+report.Failed > 0 {
		r.logger.Info("ledger reconciliation finished",
			"from", report.From,
			"reserved", report.Reserved,
			"released", report.Released,
			"failed", report.Failed)
	}
	return report, nil
}
