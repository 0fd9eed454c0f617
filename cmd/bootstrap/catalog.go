package bootstrap

import (
	"log/slog"

	"slot-booking/internal/domain/catalog"
	"slot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	source := cfg.Catalog.File
	if source == "" {
		source = "embedded"
	}
	logger.Info("catalog loaded",
		"source", source,
		"locations", len(cat.Locations()),
		"slots", len(cat.Slots()))
	return cat, nil
}
