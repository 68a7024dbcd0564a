// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/circuitbreaker"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit breaker protection.
// When the circuit is open, catalog reads report no data rather than an
// error; the catalog service then keeps serving its last good snapshot.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new catalog repository wrapper.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListSteps returns all customization steps with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ListSteps(ctx context.Context) ([]model.Step, error) {
	var result []model.Step
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListSteps(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// ListOptions returns all menu item options with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ListOptions(ctx context.Context) ([]model.Option, error) {
	var result []model.Option
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListOptions(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// DishRepositoryWithCircuitBreaker wraps DishRepository with circuit breaker protection.
// Dish writes are never silently absorbed: an open circuit surfaces as an
// error so the caller can report the submission as failed.
type DishRepositoryWithCircuitBreaker struct {
	repo           *DishRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDishRepositoryWithCircuitBreaker creates a new dish repository wrapper.
func NewDishRepositoryWithCircuitBreaker(repo *DishRepository, cb *circuitbreaker.CircuitBreaker) *DishRepositoryWithCircuitBreaker {
	return &DishRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a dish with circuit breaker protection.
func (r *DishRepositoryWithCircuitBreaker) Insert(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	var result *model.Dish
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Insert(ctx, dish)
		return cbErr
	})
	return result, err
}

// FindByID returns a dish with circuit breaker protection.
func (r *DishRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Dish, error) {
	var result *model.Dish
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// UpdateComposition updates a dish's composition with circuit breaker protection.
func (r *DishRepositoryWithCircuitBreaker) UpdateComposition(ctx context.Context, id string, note string, steps []model.DishStep) (*model.Dish, error) {
	var result *model.Dish
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateComposition(ctx, id, note, steps)
		return cbErr
	})
	return result, err
}

// ListByOrder returns an order's dishes with circuit breaker protection.
func (r *DishRepositoryWithCircuitBreaker) ListByOrder(ctx context.Context, orderID string) ([]model.Dish, error) {
	var result []model.Dish
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByOrder(ctx, orderID)
		return cbErr
	})
	return result, err
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new logs repository wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a log entry with circuit breaker protection. An open
// circuit drops the entry silently; audit logging is best effort.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany inserts log entries in bulk with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query queries log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}
