// Package app provides service initialization.
package app

import (
	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog    service.CatalogService
	Aggregator service.Aggregator
	Dishes     service.DishService
	Cart       service.CartService
}

// InitializeServices initializes business logic services. Without a
// database the dish and cart services stay nil and their routes will
// serve errors; the service can still start for health checks.
func InitializeServices(dbComponents *DatabaseComponents, cfg config.CatalogConfig) *ServiceComponents {
	if dbComponents == nil {
		return &ServiceComponents{Aggregator: service.NewTotalsAggregator()}
	}

	var catalogOpts []service.CatalogOption
	if cfg.SnapshotTTL > 0 {
		catalogOpts = append(catalogOpts, service.WithSnapshotTTL(cfg.SnapshotTTL))
	}

	catalog := service.NewCatalogService(dbComponents.CatalogRepo, catalogOpts...)
	aggregator := service.NewTotalsAggregator()

	return &ServiceComponents{
		Catalog:    catalog,
		Aggregator: aggregator,
		Dishes:     service.NewDishService(dbComponents.DishRepo, catalog, aggregator),
		Cart:       service.NewCartService(dbComponents.DishRepo, catalog, aggregator),
	}
}
