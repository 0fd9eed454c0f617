package readstore

import (
	"context"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/readstore/slot_queries_mock.go -package=readstore

type SlotReadQueries interface {
	ListBookedSlotsFrom(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.BookedSlots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) ListFrom(ctx context.Context, from slot.Date) ([]*queries.BookedSlotView, error) {
	rows, err := r.queries.ListBookedSlotsFrom(ctx, r.db, pgconv.DateToPgtype(from.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}

	views := make([]*queries.BookedSlotView, len(rows))
	for i, row := range rows {
		views[i] = &queries.BookedSlotView{
			Date:      slot.DateOf(pgconv.DateFromPgtype(row.BookingDate)).String(),
			Location:  row.Location,
			Package:   row.PackageTier,
			Global:    row.PackageTier == "",
			SlotIDs:   append([]string{}, row.SlotIds...),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return views, nil
}
