package converter

import (
	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	c := o.Customer()
	b := o.Booking()
	return sqlc.CreateOrderParams{
		OrderID:       o.ID().String(),
		CustomerName:  c.Name(),
		CustomerPhone: c.Phone().String(),
		CustomerEmail: pgconv.StringPtrToPgtype(c.Email()),
		Location:      b.Location(),
		BookingDate:   pgconv.DateToPgtype(b.Date().Time()),
		SlotID:        b.SlotID(),
		SlotLabel:     b.SlotLabel(),
		PackageTier:   b.Package(),
		PackagePrice:  b.Price(),
		Features:      b.Features(),
		Amount:        o.Amount(),
		Status:        o.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderToStatusParams(o *order.Order, expected order.Status) sqlc.UpdateOrderStatusParams {
	return sqlc.UpdateOrderStatusParams{
		Status:             o.Status().String(),
		PaidAt:             pgconv.TimePtrToPgtype(o.PaidAt()),
		CancelledAt:        pgconv.TimePtrToPgtype(o.CancelledAt()),
		CancellationReason: pgconv.StringPtrToPgtype(o.CancellationReason()),
		PaymentReference:   pgconv.StringPtrToPgtype(o.PaymentReference()),
		UpdatedAt:          pgconv.TimeToPgtype(o.UpdatedAt()),
		OrderID:            o.ID().String(),
		ExpectedStatus:     expected.String(),
	}
}

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.OrderID)
	}

	booking, err := order.NewBooking(
		row.Location,
		slot.DateOf(pgconv.DateFromPgtype(row.BookingDate)),
		row.SlotID,
		row.SlotLabel,
		row.PackageTier,
		row.PackagePrice,
		row.Features,
	)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.OrderID)
	}

	return order.Reconstruct(order.Snapshot{
		ID:                 order.ID(row.OrderID),
		Customer:           order.ReconstructCustomer(row.CustomerName, order.Phone(row.CustomerPhone), pgconv.StringPtrFromPgtype(row.CustomerEmail)),
		Booking:            booking,
		Amount:             row.Amount,
		Status:             status,
		PaymentSessionID:   pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		GatewayOrderID:     pgconv.StringPtrFromPgtype(row.GatewayOrderID),
		PaymentReference:   pgconv.StringPtrFromPgtype(row.PaymentReference),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		PaidAt:             pgconv.TimePtrFromPgtype(row.PaidAt),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
	}), nil
}

func OrdersFromRows(rows []sqlc.Orders) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := OrderFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// ScopeToTier maps a ledger scope to its package_tier column value.
func ScopeToTier(s slot.Scope) string {
	pkg, _ := s.Package()
	return pkg
}

func BoardFromRows(date slot.Date, location string, rows []sqlc.BookedSlots) *slot.Board {
	board := slot.NewBoard(date, location)
	for _, row := range rows {
		board.Add(slot.Scoped(row.PackageTier), row.SlotIds...)
	}
	return board
}
