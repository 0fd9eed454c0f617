package repository

import (
	"context"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.Orders, error)
	GetOrderByID(ctx context.Context, db sqlc.DBTX, orderID string) (sqlc.Orders, error)
	ListOrdersByPhone(ctx context.Context, db sqlc.DBTX, customerPhone string) ([]sqlc.Orders, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (sqlc.Orders, error)
	AttachPaymentSession(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachPaymentSessionParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if _, err := r.queries.CreateOrder(ctx, r.db, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id order.ID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode order", err)
	}
	return o, nil
}

func (r *OrderRepository) FindByCustomerPhone(ctx context.Context, phone order.Phone) ([]*order.Order, error) {
	rows, err := r.queries.ListOrdersByPhone(ctx, r.db, phone.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by phone", err)
	}
	orders, err := converter.OrdersFromRows(rows)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode orders", err)
	}
	return orders, nil
}

// UpdateStatus is a compare-and-set on the stored status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	_, err := r.queries.UpdateOrderStatus(ctx, r.db, converter.OrderToStatusParams(o, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}

func (r *OrderRepository) AttachPaymentSession(ctx context.Context, o *order.Order) error {
	params := sqlc.AttachPaymentSessionParams{
		OrderID:          o.ID().String(),
		PaymentSessionID: pgconv.StringPtrToPgtype(o.PaymentSessionID()),
		GatewayOrderID:   pgconv.StringPtrToPgtype(o.GatewayOrderID()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}
	n, err := r.queries.AttachPaymentSession(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to attach payment session", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}
