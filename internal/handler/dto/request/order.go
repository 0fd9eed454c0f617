package request

import (
	"bytes"
	"encoding/json"

	"slot-booking/internal/usecase/commands"
)

type CustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone string  `json:"phone" binding:"required"`
	Email *string `json:"email"`
}

type BookingRequest struct {
	Location string `json:"location" binding:"required"`
	Date     string `json:"date" binding:"required"`
	SlotID   string `json:"slotId" binding:"required"`
	Package  string `json:"package" binding:"required"`
}

type CreateOrderRequest struct {
	Customer CustomerRequest `json:"customer" binding:"required"`
	Booking  BookingRequest  `json:"booking" binding:"required"`
}

func (r *CreateOrderRequest) ToInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		Name:     r.Customer.Name,
		Phone:    r.Customer.Phone,
		Email:    r.Customer.Email,
		Location: r.Booking.Location,
		Date:     r.Booking.Date,
		SlotID:   r.Booking.SlotID,
		Package:  r.Booking.Package,
	}
}

// FlexBool accepts true, false, "true" and "false".
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "true":
		*b = true
	case "false", "", "null":
		*b = false
	default:
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*b = FlexBool(v)
	}
	return nil
}

type VerifyOrderRequest struct {
	OrderID string   `json:"orderId" binding:"required"`
	Demo    FlexBool `json:"demo"`
}

type CancelOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Phone   string `json:"phone"`
	Reason  string `json:"reason" binding:"max=500"`
}

type ListOrdersQuery struct {
	Phone string `form:"phone" binding:"required"`
}
