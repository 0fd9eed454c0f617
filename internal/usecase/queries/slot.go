package queries

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot_mock.go -package=queriesmock

import (
	"context"

	"slot-booking/internal/domain/catalog"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"
)

type SlotQueries interface {
	Availability(ctx context.Context, date, location string) (*AvailabilityView, error)
	// Check reports whether slotID is free for pkg. An empty pkg checks only
	// the global scope.
	Check(ctx context.Context, date, location, slotID, pkg string) (*SlotCheckView, error)
	ListBooked(ctx context.Context, from string) ([]*BookedSlotView, error)
}

type SlotReadStore interface {
	ListFrom(ctx context.Context, from slot.Date) ([]*BookedSlotView, error)
}

type slotQueriesImpl struct {
	catalog *catalog.Catalog
	ledger  shared.SlotLedger
	store   SlotReadStore
}

func NewSlotQueries(cat *catalog.Catalog, ledger shared.SlotLedger, store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{
		catalog: cat,
		ledger:  ledger,
		store:   store,
	}
}

func (q *slotQueriesImpl) Availability(ctx context.Context, date, location string) (*AvailabilityView, error) {
	board, err := q.board(ctx, date, location)
	if err != nil {
		return nil, err
	}

	bookedMap := make(map[string][]string)
	for _, pkg := range board.Packages() {
		bookedMap[pkg] = cloneStrings(board.Booked(slot.Scoped(pkg)))
	}

	slots := q.catalog.Slots()
	timeSlots := make([]TimeSlotView, len(slots))
	for i, s := range slots {
		timeSlots[i] = TimeSlotView{ID: s.ID, Label: s.Label, Start: s.Start, End: s.End}
	}

	return &AvailabilityView{
		Date:           board.Date().String(),
		Location:       location,
		FormattedDate:  board.Date().Long(),
		BookedMap:      bookedMap,
		GlobalBookings: cloneStrings(board.Booked(slot.Global())),
		TimeSlots:      timeSlots,
	}, nil
}

func (q *slotQueriesImpl) Check(ctx context.Context, date, location, slotID, pkg string) (*SlotCheckView, error) {
	if slotID == "" {
		return nil, errs.Mark(errs.New("slotId is required"), errs.ErrDomainValidation)
	}
	board, err := q.board(ctx, date, location)
	if err != nil {
		return nil, err
	}
	available := board.IsAvailable(slot.Scoped(pkg), slotID)
	return &SlotCheckView{SlotID: slotID, Available: available, Booked: !available}, nil
}

func (q *slotQueriesImpl) ListBooked(ctx context.Context, from string) ([]*BookedSlotView, error) {
	d, err := slot.ParseDate(from)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	views, err := q.store.ListFrom(ctx, d)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *slotQueriesImpl) board(ctx context.Context, date, location string) (*slot.Board, error) {
	if date == "" || location == "" {
		return nil, errs.Mark(errs.New("date and location are required"), errs.ErrDomainValidation)
	}
	d, err := slot.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := q.catalog.Location(location); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	board, err := q.ledger.Board(ctx, d, location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return board, nil
}
