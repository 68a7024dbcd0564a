// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and circuit breakers)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services on top of the repositories
	serviceComponents := InitializeServices(dbComponents, cfg.Catalog)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(
		routerComponents.Handler,
		routerComponents.CatalogHandler,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)
}
