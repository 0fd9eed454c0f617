package order

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPhone         = errors.New("phone must contain exactly 10 digits")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrIncompleteBooking    = errors.New("booking location, date, slot and package are required")
	ErrInvalidAmount        = errors.New("amount must be positive")
)

type Order struct {
	id                 ID
	customer           Customer
	booking            Booking
	amount             int64
	status             Status
	paymentSessionID   *string
	gatewayOrderID     *string
	paymentReference   *string
	createdAt          time.Time
	updatedAt          time.Time
	paidAt             *time.Time
	cancelledAt        *time.Time
	cancellationReason *string
}

// NewOrder creates a pending order. The amount is the booking's snapshotted price.
func NewOrder(id ID, customer Customer, booking Booking, now time.Time) *Order {
	return &Order{
		id:        id,
		customer:  customer,
		booking:   booking,
		amount:    booking.Price(),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
}

type Snapshot struct {
	ID                 ID
	Customer           Customer
	Booking            Booking
	Amount             int64
	Status             Status
	PaymentSessionID   *string
	GatewayOrderID     *string
	PaymentReference   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	PaidAt             *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:                 s.ID,
		customer:           s.Customer,
		booking:            s.Booking,
		amount:             s.Amount,
		status:             s.Status,
		paymentSessionID:   s.PaymentSessionID,
		gatewayOrderID:     s.GatewayOrderID,
		paymentReference:   s.PaymentReference,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		paidAt:             s.PaidAt,
		cancelledAt:        s.CancelledAt,
		cancellationReason: s.CancellationReason,
	}
}

func (o *Order) ID() ID                      { return o.id }
func (o *Order) Customer() Customer          { return o.customer }
func (o *Order) Booking() Booking            { return o.booking }
func (o *Order) Amount() int64               { return o.amount }
func (o *Order) Status() Status              { return o.status }
func (o *Order) PaymentSessionID() *string   { return o.paymentSessionID }
func (o *Order) GatewayOrderID() *string     { return o.gatewayOrderID }
func (o *Order) PaymentReference() *string   { return o.paymentReference }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }
func (o *Order) PaidAt() *time.Time          { return o.paidAt }
func (o *Order) CancelledAt() *time.Time     { return o.cancelledAt }
func (o *Order) CancellationReason() *string { return o.cancellationReason }
func (o *Order) IsConfirmed() bool           { return o.status == StatusConfirmed }
func (o *Order) HasGatewayOrder() bool       { return o.gatewayOrderID != nil && *o.gatewayOrderID != "" }
func (o *Order) OwnedBy(phone Phone) bool    { return o.customer.phone == phone }

// Clone returns a shallow copy; pointer fields are never mutated in place.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

// AttachPayment records the gateway session opened for this order.
func (o *Order) AttachPayment(sessionID, gatewayOrderID string, now time.Time) {
	if sessionID != "" {
		o.paymentSessionID = &sessionID
	}
	if gatewayOrderID != "" {
		o.gatewayOrderID = &gatewayOrderID
	}
	o.updatedAt = now
}

// SetPaymentReference stores the gateway's payment id for a confirmed payment.
func (o *Order) SetPaymentReference(ref string) {
	if ref != "" {
		o.paymentReference = &ref
	}
}
