package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/domain/catalog"
	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"
)

// maxTransitionAttempts bounds how often a status write is re-decided after
// losing a compare-and-set race.
const maxTransitionAttempts = 3

const (
	NotificationBookingConfirmed = "booking.confirmed"
	NotificationBookingCancelled = "booking.cancelled"
)

type CreateOrderInput struct {
	Name     string
	Phone    string
	Email    *string
	Location string
	Date     string
	SlotID   string
	Package  string
}

type CreateOrderResult struct {
	Order            *queries.OrderView
	PaymentSessionID *string
	// DemoMode is set when no payment session could be opened.
	DemoMode bool
}

type VerifyPaymentResult struct {
	Paid  bool
	Order *queries.OrderView
}

type CancelOrderInput struct {
	OrderID   string
	Requester order.Requester
	Reason    string
}

type BookingCommands interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error)
	VerifyPayment(ctx context.Context, orderID string, demo bool) (*VerifyPaymentResult, error)
	ConfirmOrder(ctx context.Context, orderID string, source order.Source) (*queries.OrderView, error)
	CancelOrder(ctx context.Context, in CancelOrderInput) (*queries.OrderView, error)
	// HandleWebhook never fails; problems are logged because gateways retry
	// until they see a 200.
	HandleWebhook(ctx context.Context, payload shared.WebhookPayload)
	AdminSetStatus(ctx context.Context, orderID, status string) (*queries.OrderView, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	ledger  shared.SlotLedger
	gateway shared.PaymentGateway
	catalog *catalog.Catalog
	clock   clock.Clock
	ledgerC config.LedgerConfig
	payment config.PaymentConfig
	metrics *metrics.Registry
	logger  *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	ledger shared.SlotLedger,
	gateway shared.PaymentGateway,
	cat *catalog.Catalog,
	clk clock.Clock,
	cfg config.Config,
	m *metrics.Registry,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		ledger:  ledger,
		gateway: gateway,
		catalog: cat,
		clock:   clk,
		ledgerC: cfg.Ledger,
		payment: cfg.Payment,
		metrics: m,
		logger:  logger,
	}
}

func (b *bookingCommandsImpl) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	customer, err := order.NewCustomer(in.Name, in.Phone, in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	date, err := slot.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pkg, err := b.catalog.Package(in.Location, in.Package)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	ts, err := b.catalog.Slot(in.SlotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	board, err := b.ledger.Board(ctx, date, in.Location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Nothing is reserved until confirmation, so two pending orders for one
	// slot can both pass this check.
	if !board.IsAvailable(slot.Scoped(pkg.Name), ts.ID) {
		return nil, errs.Mark(errs.Newf("slot %s on %s at %s", ts.ID, date, in.Location), errs.ErrSlotUnavailable)
	}

	booking, err := order.NewBooking(in.Location, date, ts.ID, ts.Label, pkg.Name, pkg.Price, pkg.Features)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := b.clock.Now()
	o := order.NewOrder(order.NewID(now), customer, booking, now)
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, o)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &CreateOrderResult{DemoMode: true}
	session, err := b.gateway.CreateSession(ctx, shared.SessionRequest{
		OrderID:       o.ID().String(),
		Amount:        o.Amount(),
		CustomerName:  customer.Name(),
		CustomerPhone: customer.Phone().String(),
		CustomerEmail: customer.Email(),
	})
	switch {
	case err == nil:
		result.DemoMode = false
		result.PaymentSessionID = &session.SessionID
		b.attachSession(ctx, o, session)
	case errs.Is(err, shared.ErrGatewayUnavailable):
		b.logger.Info("payment gateway unavailable, order created in demo mode", "order_id", o.ID().String())
	default:
		b.logger.Warn("payment session failed, order created in demo mode",
			"order_id", o.ID().String(),
			"error", err.Error())
	}

	result.Order = queries.NewOrderView(o)
	return result, nil
}

func (b *bookingCommandsImpl) attachSession(ctx context.Context, o *order.Order, session *shared.PaymentSession) {
	o.AttachPayment(session.SessionID, session.GatewayOrderID, b.clock.Now())
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().AttachPaymentSession(ctx, o)
	})
	if err != nil {
		// The webhook still confirms the order by id; only verify polling is lost.
		b.logger.Error("failed to store payment session",
			"order_id", o.ID().String(),
			"error", err.Error())
	}
}

func (b *bookingCommandsImpl) VerifyPayment(ctx context.Context, orderID string, demo bool) (*VerifyPaymentResult, error) {
	o, err := b.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.IsConfirmed() {
		return &VerifyPaymentResult{Paid: true, Order: queries.NewOrderView(o)}, nil
	}

	paid := false
	if o.HasGatewayOrder() && b.gateway.Configured() {
		status, err := b.gateway.CheckStatus(ctx, shared.PaymentRef{OrderID: o.ID().String(), GatewayOrderID: *o.GatewayOrderID()})
		if err != nil {
			b.logger.Warn("payment status check failed", "order_id", orderID, "error", err.Error())
		}
		paid = err == nil && status == shared.PaymentPaid
	}
	if !paid && demo && b.demoAllowed() {
		b.logger.Info("confirming order in demo mode", "order_id", orderID)
		paid = true
	}
	if !paid {
		return &VerifyPaymentResult{Paid: false, Order: queries.NewOrderView(o)}, nil
	}

	view, err := b.ConfirmOrder(ctx, orderID, order.SourceClientVerify)
	if err != nil {
		return nil, err
	}
	return &VerifyPaymentResult{Paid: view.Status == order.StatusConfirmed.String(), Order: view}, nil
}

func (b *bookingCommandsImpl) demoAllowed() bool {
	return !b.gateway.Configured() || b.payment.AllowDemo
}

func (b *bookingCommandsImpl) ConfirmOrder(ctx context.Context, orderID string, source order.Source) (*queries.OrderView, error) {
	o, err := b.transition(ctx, orderID, func(o *order.Order, now time.Time) (order.Transition, error) {
		return o.Confirm(source, now)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewOrderView(o), nil
}

func (b *bookingCommandsImpl) CancelOrder(ctx context.Context, in CancelOrderInput) (*queries.OrderView, error) {
	o, err := b.transition(ctx, in.OrderID, func(o *order.Order, now time.Time) (order.Transition, error) {
		return o.Cancel(in.Requester, in.Reason, now)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewOrderView(o), nil
}

func (b *bookingCommandsImpl) HandleWebhook(ctx context.Context, payload shared.WebhookPayload) {
	event, err := b.gateway.ValidateWebhook(ctx, payload)
	if err != nil {
		b.logger.Warn("ignoring invalid payment webhook", "error", err.Error())
		return
	}
	if !event.IsSuccess {
		b.logger.Info("ignoring non-success payment webhook", "order_id", event.OrderID, "type", event.Type)
		return
	}

	_, err = b.transition(ctx, event.OrderID, func(o *order.Order, now time.Time) (order.Transition, error) {
		if event.PaymentReference != "" && !o.IsConfirmed() {
			o.SetPaymentReference(event.PaymentReference)
		}
		return o.Confirm(order.SourceWebhook, now)
	})
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrOrderNotFound):
		b.logger.Warn("payment webhook for unknown order", "order_id", event.OrderID)
	default:
		b.logger.Error("payment webhook confirmation failed", "order_id", event.OrderID, "error", err.Error())
	}
}

func (b *bookingCommandsImpl) AdminSetStatus(ctx context.Context, orderID, status string) (*queries.OrderView, error) {
	to, err := order.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	o, err := b.transition(ctx, orderID, func(o *order.Order, now time.Time) (order.Transition, error) {
		reason := ""
		if to == order.StatusCancelled {
			reason = "cancelled by admin"
		}
		return o.TransitionTo(to, order.SourceAdmin, now, reason)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewOrderView(o), nil
}

func (b *bookingCommandsImpl) load(ctx context.Context, orderID string) (*order.Order, error) {
	if orderID == "" {
		return nil, errs.Mark(errs.New("order id is required"), errs.ErrDomainValidation)
	}
	var o *order.Order
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Orders().FindByID(ctx, order.ID(orderID))
		if err != nil {
			return err
		}
		o = found
		return nil
	})
	if err != nil {
		return nil, markLoadErr(err)
	}
	return o, nil
}

func markLoadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrOrderNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
