package queries

import (
	"slices"
	"time"

	"slot-booking/internal/domain/order"
)

// OrderView is the read model shared by every order endpoint.
type OrderView struct {
	OrderID            string     `json:"orderId"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	CustomerEmail      *string    `json:"customerEmail,omitempty"`
	Location           string     `json:"location"`
	BookingDate        string     `json:"date"`
	SlotID             string     `json:"slotId"`
	SlotLabel          string     `json:"slotLabel"`
	PackageTier        string     `json:"package"`
	PackagePrice       int64      `json:"packagePrice"`
	Features           []string   `json:"features"`
	Amount             int64      `json:"amount"`
	Status             string     `json:"status"`
	PaymentSessionID   *string    `json:"paymentSessionId,omitempty"`
	GatewayOrderID     *string    `json:"gatewayOrderId,omitempty"`
	PaymentReference   *string    `json:"paymentReference,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	PaidAt             *time.Time `json:"paidAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

func NewOrderView(o *order.Order) *OrderView {
	c := o.Customer()
	b := o.Booking()
	return &OrderView{
		OrderID:            o.ID().String(),
		CustomerName:       c.Name(),
		CustomerPhone:      c.Phone().String(),
		CustomerEmail:      c.Email(),
		Location:           b.Location(),
		BookingDate:        b.Date().String(),
		SlotID:             b.SlotID(),
		SlotLabel:          b.SlotLabel(),
		PackageTier:        b.Package(),
		PackagePrice:       b.Price(),
		Features:           b.Features(),
		Amount:             o.Amount(),
		Status:             o.Status().String(),
		PaymentSessionID:   o.PaymentSessionID(),
		GatewayOrderID:     o.GatewayOrderID(),
		PaymentReference:   o.PaymentReference(),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		PaidAt:             o.PaidAt(),
		CancelledAt:        o.CancelledAt(),
	}
}

type OrderFilter struct {
	Status string
	Limit  int32
}

type CountView struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

type StatsView struct {
	TotalOrders     int64       `json:"totalOrders"`
	PendingOrders   int64       `json:"pendingOrders"`
	ConfirmedOrders int64       `json:"confirmedOrders"`
	CancelledOrders int64       `json:"cancelledOrders"`
	FailedOrders    int64       `json:"failedOrders"`
	Revenue         int64       `json:"revenue"`
	UniqueCustomers int64       `json:"uniqueCustomers"`
	ByLocation      []CountView `json:"byLocation"`
	ByPackage       []CountView `json:"byPackage"`
}

// BookedSlotView is one reservation record. Package is empty for the global scope.
type BookedSlotView struct {
	Date      string    `json:"date"`
	Location  string    `json:"location"`
	Package   string    `json:"package"`
	Global    bool      `json:"global"`
	SlotIDs   []string  `json:"slotIds"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TimeSlotView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityView struct {
	Date           string              `json:"date"`
	Location       string              `json:"location"`
	FormattedDate  string              `json:"formattedDate"`
	BookedMap      map[string][]string `json:"bookedMap"`
	GlobalBookings []string            `json:"globalBookings"`
	TimeSlots      []TimeSlotView      `json:"timeSlots"`
}

type SlotCheckView struct {
	SlotID    string `json:"slotId"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

type LocationView struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

type PackageView struct {
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Popular  bool     `json:"popular"`
	Features []string `json:"features"`
}

type LocationPackagesView struct {
	LocationView
	Packages []PackageView `json:"packages"`
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
