// Package app provides router configuration.
package app

import (
	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/http"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler        *http.Handler
	CatalogHandler *http.CatalogHandler
	HealthHandler  *http.HealthHandler
	Config         http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	var handlerOpts []http.HandlerOption
	if loggingService != nil {
		handlerOpts = append(handlerOpts, http.WithLoggingService(loggingService))
	}

	handler := http.NewHandler(services.Dishes, services.Cart, handlerOpts...)
	catalogHandler := http.NewCatalogHandler(services.Catalog)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.DishCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_dishes", dbComponents.DishCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		JWTSecret:      cfg.Auth.JWTSecretKey,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		CatalogService: services.Catalog,
	}

	return &RouterComponents{
		Handler:        handler,
		CatalogHandler: catalogHandler,
		HealthHandler:  healthHandler,
		Config:         routerCfg,
	}
}
