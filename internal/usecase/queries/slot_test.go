//go:build unit

package queries_test

import (
	"context"
	"testing"

	"slot-booking/internal/domain/catalog"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedger struct {
	board *slot.Board
	err   error
	reads int
}

func (l *stubLedger) Board(_ context.Context, date slot.Date, location string) (*slot.Board, error) {
	l.reads++
	if l.err != nil {
		return nil, l.err
	}
	if l.board != nil {
		return l.board, nil
	}
	return slot.NewBoard(date, location), nil
}

func (l *stubLedger) Reserve(context.Context, slot.Key, string) error { return nil }
func (l *stubLedger) Release(context.Context, slot.Key, string) error { return nil }

func newSlotQueries(t *testing.T, ledger *stubLedger) queries.SlotQueries {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return queries.NewSlotQueries(cat, ledger, nil)
}

func TestSlotQueries_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("splits package and global bookings", func(t *testing.T) {
		d, err := slot.ParseDate("2026-12-20")
		require.NoError(t, err)
		board := slot.NewBoard(d, "Surat")
		board.Add(slot.Scoped("Gold"), "slot-2")
		board.Add(slot.Global(), "slot-6")

		view, err := newSlotQueries(t, &stubLedger{board: board}).Availability(ctx, "2026-12-20", "Surat")
		require.NoError(t, err)
		assert.Equal(t, []string{"slot-2"}, view.BookedMap["Gold"])
		assert.Equal(t, []string{"slot-6"}, view.GlobalBookings)
		assert.Len(t, view.TimeSlots, 6)
	})

	t.Run("unknown location is a validation error", func(t *testing.T) {
		ledger := &stubLedger{}
		_, err := newSlotQueries(t, ledger).Availability(ctx, "2026-12-20", "Mumbai")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, errs.ErrLocationNotFound))
		assert.Zero(t, ledger.reads)
	})

	t.Run("bad date is a validation error", func(t *testing.T) {
		_, err := newSlotQueries(t, &stubLedger{}).Availability(ctx, "20-12-2026", "Surat")
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("ledger failure is a database error", func(t *testing.T) {
		_, err := newSlotQueries(t, &stubLedger{err: errs.New("conn reset")}).Availability(ctx, "2026-12-20", "Surat")
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestSlotQueries_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown location is rejected before the ledger", func(t *testing.T) {
		ledger := &stubLedger{}
		_, err := newSlotQueries(t, ledger).Check(ctx, "2026-12-20", "Mumbai", "slot-1", "Gold")
		assert.True(t, errs.Is(err, errs.ErrLocationNotFound))
		assert.Zero(t, ledger.reads)
	})

	t.Run("missing slot id", func(t *testing.T) {
		_, err := newSlotQueries(t, &stubLedger{}).Check(ctx, "2026-12-20", "Surat", "", "Gold")
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
