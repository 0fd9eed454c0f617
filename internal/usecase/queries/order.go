package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

import (
	"context"
	"fmt"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type OrderQueries interface {
	GetByID(ctx context.Context, orderID string) (*OrderView, error)
	// ListByPhone returns a customer's orders newest first.
	ListByPhone(ctx context.Context, phone string) ([]*OrderView, error)
	ListAll(ctx context.Context, filter OrderFilter) ([]*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, orderID string) (*OrderView, error)
	ListByPhone(ctx context.Context, phone string) ([]*OrderView, error)
	List(ctx context.Context, status string, limit int32) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID string) (*OrderView, error) {
	if orderID == "" {
		return nil, errs.Mark(errs.New("order id is required"), errs.ErrDomainValidation)
	}
	v, err := q.store.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

func (q *orderQueriesImpl) ListByPhone(ctx context.Context, phone string) ([]*OrderView, error) {
	p, err := order.NewPhone(phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	views, err := q.store.ListByPhone(ctx, p.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, filter OrderFilter) ([]*OrderView, error) {
	if filter.Status != "" {
		if _, err := order.ParseStatus(filter.Status); err != nil {
			return nil, errs.Mark(fmt.Errorf("status filter: %w", err), errs.ErrDomainValidation)
		}
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	views, err := q.store.List(ctx, filter.Status, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
