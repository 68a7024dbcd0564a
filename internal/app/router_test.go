package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/circuitbreaker"
)

func TestInitializeRouter(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: 0,
		},
		Auth: config.AuthConfig{
			Enabled:      true,
			JWTSecretKey: "secret",
		},
	}

	t.Run("without database", func(t *testing.T) {
		services := InitializeServices(nil, config.CatalogConfig{})

		components := InitializeRouter(services, nil, cfg)

		assert.NotNil(t, components.Handler)
		assert.NotNil(t, components.CatalogHandler)
		assert.NotNil(t, components.HealthHandler)
		assert.Nil(t, components.Config.LoggingService)
		assert.True(t, components.Config.EnableAuth)
		assert.Equal(t, "secret", components.Config.JWTSecret)
	})

	t.Run("with database wires logging and circuit breakers", func(t *testing.T) {
		db := testDatabaseComponents()
		db.CatalogCircuitBreaker = circuitbreaker.New(circuitbreaker.DefaultConfig())
		db.DishCircuitBreaker = circuitbreaker.New(circuitbreaker.DefaultConfig())
		db.LogsCircuitBreaker = circuitbreaker.New(circuitbreaker.DefaultConfig())
		services := InitializeServices(db, config.CatalogConfig{})

		components := InitializeRouter(services, db, cfg)

		assert.NotNil(t, components.Config.LoggingService)
		assert.NotNil(t, components.Config.CatalogService)
	})
}
