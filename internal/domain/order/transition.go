package order

import (
	"fmt"
	"time"

	"slot-booking/internal/pkg/errs"
)

type LedgerEffect int

const (
	LedgerNone LedgerEffect = iota
	LedgerReserve
	LedgerRelease
)

func (e LedgerEffect) String() string {
	switch e {
	case LedgerReserve:
		return "reserve"
	case LedgerRelease:
		return "release"
	default:
		return "none"
	}
}

// Transition describes one status change. From == To means nothing changed.
type Transition struct {
	From   Status
	To     Status
	Source Source
	At     time.Time
}

func (t Transition) Changed() bool {
	return t.From != t.To
}

// LedgerEffect keeps the slot ledger in step with confirmed orders: entering
// confirmed reserves the slot and leaving confirmed releases it.
func (t Transition) LedgerEffect() LedgerEffect {
	switch {
	case !t.Changed():
		return LedgerNone
	case t.To == StatusConfirmed:
		return LedgerReserve
	case t.From == StatusConfirmed:
		return LedgerRelease
	default:
		return LedgerNone
	}
}

// TransitionTo is the single entry point for status changes. Moving to the
// current status is a no-op and returns an unchanged Transition.
func (o *Order) TransitionTo(to Status, source Source, at time.Time, reason string) (Transition, error) {
	if !to.IsValid() {
		return Transition{}, errs.Mark(fmt.Errorf("transition to %q", to), ErrInvalidStatus)
	}

	t := Transition{From: o.status, To: to, Source: source, At: at}
	if !t.Changed() {
		return t, nil
	}

	o.status = to
	o.updatedAt = at
	switch to {
	case StatusConfirmed:
		paid := at
		o.paidAt = &paid
	case StatusCancelled:
		cancelled := at
		o.cancelledAt = &cancelled
		if reason != "" {
			o.cancellationReason = &reason
		}
	}
	return t, nil
}

// Confirm marks the order paid. Already confirmed orders are left untouched.
func (o *Order) Confirm(source Source, at time.Time) (Transition, error) {
	return o.TransitionTo(StatusConfirmed, source, at, "")
}

// Cancel applies the ownership and double-cancel rules before transitioning.
func (o *Order) Cancel(requester Requester, reason string, at time.Time) (Transition, error) {
	source := SourceCustomer
	if requester.IsAdmin() {
		source = SourceAdmin
	} else if phone, ok := requester.Phone(); ok && !o.OwnedBy(phone) {
		return Transition{}, errs.ErrOwnershipMismatch
	}

	if o.status == StatusCancelled {
		return Transition{}, errs.ErrAlreadyCancelled
	}
	return o.TransitionTo(StatusCancelled, source, at, reason)
}
