//go:build unit

package repository

import (
	"context"
	"testing"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotLedgerQueries struct {
	mock.Mock
}

func (m *MockSlotLedgerQueries) ListBookedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedSlotsParams) ([]sqlc.BookedSlots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.BookedSlots), args.Error(1)
}

func (m *MockSlotLedgerQueries) ReserveSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSlotParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockSlotLedgerQueries) ReleaseSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSlotParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockSlotLedgerQueries) ListUnreservedConfirmedOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnreservedConfirmedOrdersParams) ([]sqlc.Orders, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Orders), args.Error(1)
}

func (m *MockSlotLedgerQueries) ListOrphanedSlotReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrphanedSlotReservationsParams) ([]sqlc.ListOrphanedSlotReservationsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListOrphanedSlotReservationsRow), args.Error(1)
}

func TestSlotLedgerRepository_Board(t *testing.T) {
	date, err := slot.ParseDate("2026-03-01")
	require.NoError(t, err)

	q := new(MockSlotLedgerQueries)
	q.On("ListBookedSlots", mock.Anything, mock.Anything, sqlc.ListBookedSlotsParams{
		BookingDate: pgconv.DateToPgtype(date.Time()),
		Location:    "Surat",
	}).Return([]sqlc.BookedSlots{
		{PackageTier: "", SlotIds: []string{"slot-6"}},
		{PackageTier: "Gold", SlotIds: []string{"slot-1", "slot-2"}},
	}, nil)

	board, err := NewSlotLedgerRepository(q, mockDBTX{}).Board(context.Background(), date, "Surat")
	require.NoError(t, err)

	assert.False(t, board.IsAvailable(slot.Scoped("Gold"), "slot-1"))
	assert.True(t, board.IsAvailable(slot.Scoped("Silver"), "slot-1"))
	assert.False(t, board.IsAvailable(slot.Scoped("Silver"), "slot-6"))
	assert.Equal(t, []string{"slot-6"}, board.Booked(slot.Global()))
}

func TestSlotLedgerRepository_ReserveRelease(t *testing.T) {
	date, err := slot.ParseDate("2026-03-01")
	require.NoError(t, err)
	key := slot.NewKey(date, "Rajkot", slot.Scoped("Gold"))

	t.Run("reserve maps scope to package tier", func(t *testing.T) {
		q := new(MockSlotLedgerQueries)
		q.On("ReserveSlot", mock.Anything, mock.Anything, sqlc.ReserveSlotParams{
			BookingDate: pgconv.DateToPgtype(date.Time()),
			Location:    "Rajkot",
			PackageTier: "Gold",
			SlotID:      "slot-3",
		}).Return(nil)

		require.NoError(t, NewSlotLedgerRepository(q, mockDBTX{}).Reserve(context.Background(), key, "slot-3"))
		q.AssertExpectations(t)
	})

	t.Run("global scope uses empty tier", func(t *testing.T) {
		q := new(MockSlotLedgerQueries)
		q.On("ReleaseSlot", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ReleaseSlotParams) bool {
			return p.PackageTier == "" && p.SlotID == "slot-3"
		})).Return(nil)

		require.NoError(t, NewSlotLedgerRepository(q, mockDBTX{}).Release(context.Background(), key.Coarse(), "slot-3"))
		q.AssertExpectations(t)
	})

	t.Run("driver failure", func(t *testing.T) {
		q := new(MockSlotLedgerQueries)
		q.On("ReserveSlot", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		err := NewSlotLedgerRepository(q, mockDBTX{}).Reserve(context.Background(), key, "slot-3")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSlotLedgerRepository_Audit(t *testing.T) {
	from, err := slot.ParseDate("2026-03-01")
	require.NoError(t, err)
	later, err := slot.ParseDate("2026-03-05")
	require.NoError(t, err)

	q := new(MockSlotLedgerQueries)
	q.On("ListUnreservedConfirmedOrders", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Orders{
		{OrderID: "EF1", Location: "Surat", PackageTier: "Gold", SlotID: "slot-2", BookingDate: pgconv.DateToPgtype(later.Time())},
	}, nil)
	q.On("ListOrphanedSlotReservations", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.ListOrphanedSlotReservationsRow{
		{Location: "Rajkot", PackageTier: "Silver", SlotID: "slot-4", BookingDate: pgconv.DateToPgtype(later.Time())},
	}, nil)

	repo := NewSlotLedgerRepository(q, mockDBTX{})

	missing, err := repo.UnreservedConfirmed(context.Background(), from, 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, "EF1", missing[0].OrderID)
	assert.Equal(t, slot.NewKey(later, "Surat", slot.Scoped("Gold")), missing[0].Key)

	orphans, err := repo.Orphaned(context.Background(), from, 10)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "slot-4", orphans[0].SlotID)
	assert.Equal(t, slot.Scoped("Silver"), orphans[0].Key.Scope)
}
