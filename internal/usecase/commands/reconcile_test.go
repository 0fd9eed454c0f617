//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileLedger(t *testing.T) {
	// 20:00 UTC is already the next day in Asia/Kolkata.
	now := time.Date(2026, 2, 28, 20, 0, 0, 0, time.UTC)
	date, err := slot.ParseDate("2026-03-01")
	require.NoError(t, err)
	gold := slot.NewKey(date, "Surat", slot.Scoped("Gold"))
	silver := slot.NewKey(date, "Surat", slot.Scoped("Silver"))

	newReconciler := func(ledger *memLedger, auditor *fakeAuditor, m *metrics.Registry) commands.ReconcileCommands {
		return commands.NewReconcileCommands(ledger, auditor, clock.NewMockClock(now), config.NewTestConfig(), m,
			slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	t.Run("repairs both directions", func(t *testing.T) {
		ledger := newMemLedger()
		require.NoError(t, ledger.Reserve(context.Background(), silver, "slot-5"))
		require.NoError(t, ledger.Reserve(context.Background(), gold.Coarse(), "slot-6"))
		auditor := &fakeAuditor{
			missing:  []slot.Entry{{Key: gold, SlotID: "slot-1", OrderID: "EF1"}},
			orphaned: []slot.Entry{{Key: silver, SlotID: "slot-5"}, {Key: gold.Coarse(), SlotID: "slot-6"}},
		}
		m := metrics.NewRegistry()

		report, err := newReconciler(ledger, auditor, m).ReconcileLedger(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "2026-03-01", report.From)
		assert.True(t, auditor.lastFrom.Equal(date))
		assert.Equal(t, []int32{100, 100}, auditor.lastLimits)
		assert.Equal(t, 1, report.Reserved)
		assert.Equal(t, 1, report.Released)
		assert.Zero(t, report.Failed)
		assert.True(t, ledger.has(gold, "slot-1"))
		assert.False(t, ledger.has(silver, "slot-5"))
		assert.True(t, ledger.has(gold.Coarse(), "slot-6"), "global blocks are left alone")
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ReconcileRepairs.WithLabelValues("reserve")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ReconcileRepairs.WithLabelValues("release")))
	})

	t.Run("orphan confirmed after the audit read is kept", func(t *testing.T) {
		ledger := newMemLedger()
		require.NoError(t, ledger.Reserve(context.Background(), gold, "slot-3"))
		// The audit saw no owner; an order for the slot is confirmed before the release runs.
		ledger.held = func(k slot.Key, slotID string) bool { return k == gold && slotID == "slot-3" }
		auditor := &fakeAuditor{orphaned: []slot.Entry{{Key: gold, SlotID: "slot-3"}}}

		_, err := newReconciler(ledger, auditor, metrics.NewRegistry()).ReconcileLedger(context.Background())
		require.NoError(t, err)
		assert.True(t, ledger.has(gold, "slot-3"))
	})

	t.Run("clean ledger is a no-op", func(t *testing.T) {
		report, err := newReconciler(newMemLedger(), &fakeAuditor{}, metrics.NewRegistry()).ReconcileLedger(context.Background())
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileReport{From: "2026-03-01"}, *report)
	})

	t.Run("ledger write failures are counted", func(t *testing.T) {
		ledger := newMemLedger()
		ledger.err = errBoom
		auditor := &fakeAuditor{missing: []slot.Entry{{Key: gold, SlotID: "slot-1"}}}

		report, err := newReconciler(ledger, auditor, metrics.NewRegistry()).ReconcileLedger(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed)
		assert.Zero(t, report.Reserved)
	})

	t.Run("audit query failure", func(t *testing.T) {
		_, err := newReconciler(newMemLedger(), &fakeAuditor{err: errBoom}, metrics.NewRegistry()).ReconcileLedger(context.Background())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
