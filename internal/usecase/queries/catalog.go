package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"

	"slot-booking/internal/domain/catalog"
)

type CatalogQueries interface {
	Locations(ctx context.Context) []LocationView
	Packages(ctx context.Context, location string) (*LocationPackagesView, error)
}

type catalogQueriesImpl struct {
	catalog *catalog.Catalog
}

func NewCatalogQueries(cat *catalog.Catalog) CatalogQueries {
	return &catalogQueriesImpl{catalog: cat}
}

func (q *catalogQueriesImpl) Locations(_ context.Context) []LocationView {
	locs := q.catalog.Locations()
	out := make([]LocationView, len(locs))
	for i, l := range locs {
		out[i] = LocationView{Name: l.Name, Contact: l.Contact, Address: l.Address}
	}
	return out
}

func (q *catalogQueriesImpl) Packages(_ context.Context, location string) (*LocationPackagesView, error) {
	l, err := q.catalog.Location(location)
	if err != nil {
		return nil, err
	}
	pkgs := make([]PackageView, len(l.Packages))
	for i, p := range l.Packages {
		pkgs[i] = PackageView{Name: p.Name, Price: p.Price, Popular: p.Popular, Features: cloneStrings(p.Features)}
	}
	return &LocationPackagesView{
		LocationView: LocationView{Name: l.Name, Contact: l.Contact, Address: l.Address},
		Packages:     pkgs,
	}, nil
}
