package response

import (
	"time"

	"slot-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TimeSlotResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	Success        bool                `json:"success"`
	Date           string              `json:"date"`
	Location       string              `json:"location"`
	FormattedDate  string              `json:"formattedDate"`
	BookedMap      map[string][]string `json:"bookedMap"`
	GlobalBookings []string            `json:"globalBookings"`
	TimeSlots      []TimeSlotResponse  `json:"timeSlots"`
}

type SlotCheckResponse struct {
	Success   bool   `json:"success"`
	SlotID    string `json:"slotId"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

type BookedSlotResponse struct {
	Date      string    `json:"date"`
	Location  string    `json:"location"`
	Package   string    `json:"package"`
	Global    bool      `json:"global"`
	SlotIDs   []string  `json:"slotIds"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookedSlotsResponse struct {
	Success bool                 `json:"success"`
	Slots   []BookedSlotResponse `json:"slots"`
	Count   int                  `json:"count"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	res := AvailabilityResponse{Success: true}
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromSlotCheckView(v *queries.SlotCheckView) *SlotCheckResponse {
	return &SlotCheckResponse{
		Success:   true,
		SlotID:    v.SlotID,
		Available: v.Available,
		Booked:    v.Booked,
	}
}

func FromBookedSlotViews(views []*queries.BookedSlotView) (*BookedSlotsResponse, error) {
	slots := make([]BookedSlotResponse, 0, len(views))
	if err := copier.CopyWithOption(&slots, views, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &BookedSlotsResponse{Success: true, Slots: slots, Count: len(slots)}, nil
}
