package repository

import (
	"context"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

type SlotLedgerQueries interface {
	ListBookedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedSlotsParams) ([]sqlc.BookedSlots, error)
	ReserveSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSlotParams) error
	ReleaseSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSlotParams) error
	ListUnreservedConfirmedOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnreservedConfirmedOrdersParams) ([]sqlc.Orders, error)
	ListOrphanedSlotReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrphanedSlotReservationsParams) ([]sqlc.ListOrphanedSlotReservationsRow, error)
}

// SlotLedgerRepository keeps one row per (date, location, package tier). Every
// write is a single statement, so concurrent reserves and releases never lose updates.
type SlotLedgerRepository struct {
	queries SlotLedgerQueries
	db      sqlc.DBTX
}

func NewSlotLedgerRepository(queries SlotLedgerQueries, db sqlc.DBTX) *SlotLedgerRepository {
	return &SlotLedgerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotLedgerRepository) Board(ctx context.Context, date slot.Date, location string) (*slot.Board, error) {
	rows, err := r.queries.ListBookedSlots(ctx, r.db, sqlc.ListBookedSlotsParams{
		BookingDate: pgconv.DateToPgtype(date.Time()),
		Location:    location,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booked slots", err)
	}
	return converter.BoardFromRows(date, location, rows), nil
}

func (r *SlotLedgerRepository) Reserve(ctx context.Context, key slot.Key, slotID string) error {
	err := r.queries.ReserveSlot(ctx, r.db, sqlc.ReserveSlotParams{
		BookingDate: pgconv.DateToPgtype(key.Date.Time()),
		Location:    key.Location,
		PackageTier: converter.ScopeToTier(key.Scope),
		SlotID:      slotID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reserve slot", err)
	}
	return nil
}

// Release is a no-op while a confirmed order for the same key and slot exists.
func (r *SlotLedgerRepository) Release(ctx context.Context, key slot.Key, slotID string) error {
	err := r.queries.ReleaseSlot(ctx, r.db, sqlc.ReleaseSlotParams{
		BookingDate: pgconv.DateToPgtype(key.Date.Time()),
		Location:    key.Location,
		PackageTier: converter.ScopeToTier(key.Scope),
		SlotID:      slotID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	return nil
}

func (r *SlotLedgerRepository) UnreservedConfirmed(ctx context.Context, from slot.Date, limit int32) ([]slot.Entry, error) {
	rows, err := r.queries.ListUnreservedConfirmedOrders(ctx, r.db, sqlc.ListUnreservedConfirmedOrdersParams{
		FromDate: pgconv.DateToPgtype(from.Time()),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unreserved confirmed orders", err)
	}

	entries := make([]slot.Entry, 0, len(rows))
	for _, row := range rows {
		date := slot.DateOf(pgconv.DateFromPgtype(row.BookingDate))
		entries = append(entries, slot.Entry{
			Key:     slot.NewKey(date, row.Location, slot.Scoped(row.PackageTier)),
			SlotID:  row.SlotID,
			OrderID: row.OrderID,
		})
	}
	return entries, nil
}

func (r *SlotLedgerRepository) Orphaned(ctx context.Context, from slot.Date, limit int32) ([]slot.Entry, error) {
	rows, err := r.queries.ListOrphanedSlotReservations(ctx, r.db, sqlc.ListOrphanedSlotReservationsParams{
		FromDate: pgconv.DateToPgtype(from.Time()),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orphaned slot reservations", err)
	}

	entries := make([]slot.Entry, 0, len(rows))
	for _, row := range rows {
		date := slot.DateOf(pgconv.DateFromPgtype(row.BookingDate))
		entries = append(entries, slot.Entry{
			Key:    slot.NewKey(date, row.Location, slot.Scoped(row.PackageTier)),
			SlotID: row.SlotID,
		})
	}
	return entries, nil
}
