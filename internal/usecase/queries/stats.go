package queries

//go:generate mockgen -source=stats.go -destination=../../../tests/mock/queries/stats_mock.go -package=queriesmock

import (
	"context"

	"slot-booking/internal/pkg/errs"
)

type StatsQueries interface {
	Dashboard(ctx context.Context) (*StatsView, error)
}

type StatsReadStore interface {
	Dashboard(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{store: store}
}

func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*StatsView, error) {
	v, err := q.store.Dashboard(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}
