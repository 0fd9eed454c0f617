//go:build unit || e2e

package builder

import (
	"time"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/handler/dto/request"
	"slot-booking/internal/usecase/queries"
)

type OrderBuilder struct {
	ID        order.ID
	Name      string
	Phone     string
	Email     *string
	Location  string
	Date      slot.Date
	SlotID    string
	SlotLabel string
	Package   string
	Price     int64
	Features  []string
	Now       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	email := "guest@example.com"
	return &OrderBuilder{
		ID:        order.NewID(now),
		Name:      "Asha Patel",
		Phone:     "9876543210",
		Email:     &email,
		Location:  "Surat",
		Date:      slot.DateOf(now.AddDate(0, 0, 7)),
		SlotID:    "slot-1",
		SlotLabel: "11:00 AM - 1:00 PM",
		Package:   "Gold",
		Price:     2499,
		Features:  []string{"Private Theatre", "Decoration"},
		Now:       now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithPhone(phone string) *OrderBuilder {
	b.Phone = phone
	return b
}

func (b *OrderBuilder) WithSlot(date slot.Date, location, pkg, slotID string) *OrderBuilder {
	b.Date = date
	b.Location = location
	b.Package = pkg
	b.SlotID = slotID
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	customer, err := order.NewCustomer(b.Name, b.Phone, b.Email)
	if err != nil {
		return nil, err
	}
	booking, err := order.NewBooking(b.Location, b.Date, b.SlotID, b.SlotLabel, b.Package, b.Price, b.Features)
	if err != nil {
		return nil, err
	}
	return order.NewOrder(b.ID, customer, booking, b.Now), nil
}

// BuildWithStatus returns an order already moved to status by an admin.
func (b *OrderBuilder) BuildWithStatus(status order.Status) (*order.Order, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if _, err := o.TransitionTo(status, order.SourceAdmin, b.Now, ""); err != nil {
		return nil, err
	}
	return o, nil
}

// BuildView panics on invalid builder state; handler tests only need the read model.
func (b *OrderBuilder) BuildView(status order.Status) *queries.OrderView {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	if status != order.StatusPending {
		if _, err := o.TransitionTo(status, order.SourceAdmin, b.Now, ""); err != nil {
			panic(err)
		}
	}
	return queries.NewOrderView(o)
}

func (b *OrderBuilder) BuildCreateRequest() request.CreateOrderRequest {
	return request.CreateOrderRequest{
		Customer: request.CustomerRequest{Name: b.Name, Phone: b.Phone, Email: b.Email},
		Booking: request.BookingRequest{
			Location: b.Location,
			Date:     b.Date.String(),
			SlotID:   b.SlotID,
			Package:  b.Package,
		},
	}
}
