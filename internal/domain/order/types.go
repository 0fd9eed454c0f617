package order

import (
	"fmt"

	"slot-booking/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Mark(fmt.Errorf("unknown status %q", s), ErrInvalidStatus)
	}
	return st, nil
}

// Source names what triggered a transition.
type Source string

const (
	SourceClientVerify Source = "client_verify"
	SourceWebhook      Source = "webhook"
	SourceAdmin        Source = "admin"
	SourceCustomer     Source = "customer"
)

func (s Source) String() string {
	return string(s)
}
