package readstore

import (
	"context"

	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/usecase/queries"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order_queries_mock.go -package=readstore

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, orderID string) (sqlc.Orders, error)
	ListOrdersByPhone(ctx context.Context, db sqlc.DBTX, customerPhone string) ([]sqlc.Orders, error)
	ListOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersParams) ([]sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, orderID string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return rowToOrderView(row)
}

func (r *OrderReadStore) ListByPhone(ctx context.Context, phone string) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByPhone(ctx, r.db, phone)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by phone", err)
	}
	return rowsToOrderViews(rows)
}

func (r *OrderReadStore) List(ctx context.Context, status string, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrders(ctx, r.db, sqlc.ListOrdersParams{Status: status, RowLimit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return rowsToOrderViews(rows)
}

func rowToOrderView(row sqlc.Orders) (*queries.OrderView, error) {
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode order", err)
	}
	return queries.NewOrderView(o), nil
}

func rowsToOrderViews(rows []sqlc.Orders) ([]*queries.OrderView, error) {
	views := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := rowToOrderView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
