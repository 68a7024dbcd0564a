package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tanphat1102/kitchen-chicken-sub000/config"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/mocks"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/service"
)

func testDatabaseComponents() *DatabaseComponents {
	return &DatabaseComponents{
		CatalogRepo:    new(mocks.MockCatalogRepositoryInterface),
		DishRepo:       new(mocks.MockDishRepositoryInterface),
		LoggingService: service.NewLoggingService(new(mocks.MockLogsRepositoryInterface)),
	}
}

func TestInitializeServices(t *testing.T) {
	t.Run("without database only aggregator is available", func(t *testing.T) {
		services := InitializeServices(nil, config.CatalogConfig{})

		assert.NotNil(t, services.Aggregator)
		assert.Nil(t, services.Catalog)
		assert.Nil(t, services.Dishes)
		assert.Nil(t, services.Cart)
	})

	t.Run("with database all services are wired", func(t *testing.T) {
		services := InitializeServices(testDatabaseComponents(), config.CatalogConfig{
			SnapshotTTL: 10 * time.Minute,
		})

		assert.NotNil(t, services.Catalog)
		assert.NotNil(t, services.Aggregator)
		assert.NotNil(t, services.Dishes)
		assert.NotNil(t, services.Cart)
	})

	t.Run("zero snapshot TTL keeps the default", func(t *testing.T) {
		services := InitializeServices(testDatabaseComponents(), config.CatalogConfig{})

		assert.NotNil(t, services.Catalog)
	})
}
