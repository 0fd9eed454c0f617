package commands

import (
	"context"
	"encoding/json"
	"time"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/backoff"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"
)

// decideFunc mutates a freshly loaded order and reports the resulting transition.
type decideFunc func(o *order.Order, now time.Time) (order.Transition, error)

type notificationPayload struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	Name      string `json:"customerName"`
	Phone     string `json:"customerPhone"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	SlotID    string `json:"slotId"`
	SlotLabel string `json:"slotLabel"`
	Package   string `json:"package"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason,omitempty"`
}

// transition loads the order, applies decide and writes the result with a
// compare-and-set on the loaded status. A lost race reloads and decides again.
// The ledger follows once the status is committed.
func (b *bookingCommandsImpl) transition(ctx context.Context, orderID string, decide decideFunc) (*order.Order, error) {
	if orderID == "" {
		return nil, errs.Mark(errs.New("order id is required"), errs.ErrDomainValidation)
	}

	var lastErr error
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		o, tr, err := b.writeTransition(ctx, order.ID(orderID), decide)
		if err == nil {
			if tr.Changed() {
				b.metrics.OrderTransitions.WithLabelValues(tr.From.String(), tr.To.String(), tr.Source.String()).Inc()
				b.logger.Info("order status changed",
					"order_id", orderID,
					"from", tr.From.String(),
					"to", tr.To.String(),
					"source", tr.Source.String())
				b.syncLedger(ctx, o, tr)
			}
			return o, nil
		}
		if !errs.Is(err, errs.ErrConcurrentOrderEdit) {
			return nil, err
		}
		lastErr = err
		b.logger.Debug("order status write lost a race, retrying", "order_id", orderID, "attempt", attempt+1)
	}
	return nil, lastErr
}

func (b *bookingCommandsImpl) writeTransition(ctx context.Context, id order.ID, decide decideFunc) (*order.Order, order.Transition, error) {
	var (
		result *order.Order
		tr     order.Transition
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, id)
		if err != nil {
			return markLoadErr(err)
		}

		prior := o.Status()
		tr, err = decide(o, b.clock.Now())
		if err != nil {
			return markDecisionErr(err)
		}
		result = o
		if !tr.Changed() {
			return nil
		}

		if err := tx.Orders().UpdateStatus(ctx, o, prior); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrConcurrentOrderEdit)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return b.enqueueNotification(ctx, tx, o, tr)
	})
	if err != nil {
		return nil, order.Transition{}, err
	}
	return result, tr, nil
}

func markDecisionErr(err error) error {
	switch {
	case errs.Is(err, errs.ErrOwnershipMismatch), errs.Is(err, errs.ErrAlreadyCancelled):
		return err
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func (b *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, o *order.Order, tr order.Transition) error {
	var kind string
	switch tr.To {
	case order.StatusConfirmed:
		kind = NotificationBookingConfirmed
	case order.StatusCancelled:
		kind = NotificationBookingCancelled
	default:
		return nil
	}

	c := o.Customer()
	bk := o.Booking()
	p := notificationPayload{
		OrderID:   o.ID().String(),
		Status:    o.Status().String(),
		Name:      c.Name(),
		Phone:     c.Phone().String(),
		Location:  bk.Location(),
		Date:      bk.Date().String(),
		SlotID:    bk.SlotID(),
		SlotLabel: bk.SlotLabel(),
		Package:   bk.Package(),
		Amount:    o.Amount(),
	}
	if r := o.CancellationReason(); r != nil {
		p.Reason = *r
	}
	body, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, kind, kind, body, tr.At); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// syncLedger applies the transition's ledger effect. Failures are logged and
// counted but not returned: the status is already committed and the
// reconciliation sweep repairs the ledger.
func (b *bookingCommandsImpl) syncLedger(ctx context.Context, o *order.Order, tr order.Transition) {
	effect := tr.LedgerEffect()
	if effect == order.LedgerNone {
		return
	}

	key := o.Booking().LedgerKey()
	slotID := o.Booking().SlotID()
	op := b.ledger.Reserve
	if effect == order.LedgerRelease {
		op = b.ledger.Release
	}

	ctx = context.WithoutCancel(ctx)
	err := backoff.Retry(ctx, b.ledgerC.RetryAttempts, b.ledgerC.RetryBaseDelay, nil, func(ctx context.Context) error {
		return op(ctx, key, slotID)
	})
	if err != nil {
		b.metrics.LedgerFailures.WithLabelValues(effect.String()).Inc()
		b.logger.Error("slot ledger out of step with order, left for reconciliation",
			"order_id", o.ID().String(),
			"operation", effect.String(),
			"key", key.String(),
			"slot_id", slotID,
			"error", err.Error())
	}
}
