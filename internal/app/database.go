// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/circuitbreaker"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/repository"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CatalogRepo           repository.CatalogRepositoryInterface
	DishRepo              repository.DishRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	DishCircuitBreaker    *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
	DB                    *repository.MongoDB
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	newCB := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             name,
		})
	}

	catalogCB := newCB("mongodb-catalog")
	dishCB := newCB("mongodb-dishes")
	logsCB := newCB("mongodb-logs")

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewCatalogRepository(db)
	catalogRepoWithCB := repository.NewCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	dishRepo := repository.NewDishRepository(db)
	dishRepoWithCB := repository.NewDishRepositoryWithCircuitBreaker(dishRepo, dishCB)

	return &DatabaseComponents{
		CatalogRepo:           catalogRepoWithCB,
		DishRepo:              dishRepoWithCB,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		DishCircuitBreaker:    dishCB,
		LogsCircuitBreaker:    logsCB,
		DB:                    db,
	}
}
