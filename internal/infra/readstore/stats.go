package readstore

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/usecase/queries"
)

//go:generate mockgen -source=stats.go -destination=../../../tests/mock/readstore/stats_queries_mock.go -package=readstore

type StatsReadQueries interface {
	GetOrderStats(ctx context.Context, db sqlc.DBTX) (sqlc.GetOrderStatsRow, error)
	CountOrdersByLocation(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountOrdersByLocationRow, error)
	CountOrdersByPackage(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountOrdersByPackageRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) Dashboard(ctx context.Context) (*queries.StatsView, error) {
	totals, err := r.queries.GetOrderStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order stats", err)
	}
	byLocation, err := r.queries.CountOrdersByLocation(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count orders by location", err)
	}
	byPackage, err := r.queries.CountOrdersByPackage(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count orders by package", err)
	}

	view := &queries.StatsView{
		TotalOrders:     totals.TotalOrders,
		PendingOrders:   totals.PendingOrders,
		ConfirmedOrders: totals.ConfirmedOrders,
		CancelledOrders: totals.CancelledOrders,
		FailedOrders:    totals.FailedOrders,
		Revenue:         totals.Revenue,
		UniqueCustomers: totals.UniqueCustomers,
		ByLocation:      make([]queries.CountView, len(byLocation)),
		ByPackage:       make([]queries.CountView, len(byPackage)),
	}
	for i, row := range byLocation {
		view.ByLocation[i] = queries.CountView{Label: row.Label, Total: row.Total}
	}
	for i, row := range byPackage {
		view.ByPackage[i] = queries.CountView{Label: row.Label, Total: row.Total}
	}
	return view, nil
}
