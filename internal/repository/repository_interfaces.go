// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog read operations.
type CatalogRepositoryInterface interface {
	ListSteps(ctx context.Context) ([]model.Step, error)
	ListOptions(ctx context.Context) ([]model.Option, error)
}

// DishRepositoryInterface defines the interface for dish repository operations.
type DishRepositoryInterface interface {
	Insert(ctx context.Context, dish *model.Dish) (*model.Dish, error)
	FindByID(ctx context.Context, id string) (*model.Dish, error)
	UpdateComposition(ctx context.Context, id string, note string, steps []model.DishStep) (*model.Dish, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.Dish, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
