package response

import (
	"time"

	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
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
	PaymentReference   *string    `json:"paymentReference,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	PaidAt             *time.Time `json:"paidAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

type OrderEnvelope struct {
	Success bool           `json:"success"`
	Order   *OrderResponse `json:"order"`
}

type OrderListResponse struct {
	Success bool             `json:"success"`
	Orders  []*OrderResponse `json:"orders"`
	Count   int              `json:"count"`
}

type CreateOrderResponse struct {
	Success          bool           `json:"success"`
	OrderID          string         `json:"orderId"`
	Amount           int64          `json:"amount"`
	PaymentSessionID *string        `json:"paymentSessionId"`
	DemoMode         bool           `json:"demoMode"`
	Order            *OrderResponse `json:"order"`
}

type VerifyOrderResponse struct {
	Success bool           `json:"success"`
	Paid    bool           `json:"paid"`
	Order   *OrderResponse `json:"order"`
}

type WebhookResponse struct {
	Success  bool `json:"success"`
	Received bool `json:"received"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var res OrderResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Features == nil {
		res.Features = []string{}
	}
	return &res, nil
}

func FromOrderViews(views []*queries.OrderView) (*OrderListResponse, error) {
	orders := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		o, err := FromOrderView(v)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return &OrderListResponse{Success: true, Orders: orders, Count: len(orders)}, nil
}

func FromCreateOrderResult(r *commands.CreateOrderResult) (*CreateOrderResponse, error) {
	o, err := FromOrderView(r.Order)
	if err != nil {
		return nil, err
	}
	return &CreateOrderResponse{
		Success:          true,
		OrderID:          o.OrderID,
		Amount:           o.Amount,
		PaymentSessionID: r.PaymentSessionID,
		DemoMode:         r.DemoMode,
		Order:            o,
	}, nil
}
