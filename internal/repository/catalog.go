// Package repository provides data access for the customization catalog.
package repository

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

// stepDocument is the raw shape of a step document. Numeric fields are
// decoded as float64 because legacy documents carry them that way.
type stepDocument struct {
	ID          int64   `bson:"id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	StepNumber  float64 `bson:"step_number"`
	CategoryID  int64   `bson:"category_id"`
}

// optionDocument is the raw shape of a menu item document. Price and cal
// are decoded as float64 and sanitized before entering the domain:
// upstream imports have produced missing, negative, and non-finite
// values, and none of them may poison an aggregation.
type optionDocument struct {
	ID         int64   `bson:"id"`
	Name       string  `bson:"name"`
	Price      float64 `bson:"price"`
	Cal        float64 `bson:"cal"`
	IsActive   bool    `bson:"is_active"`
	ImageURL   string  `bson:"image_url"`
	CategoryID int64   `bson:"category_id"`
}

// sanitizeAmount coerces a raw numeric value to a finite non-negative
// integer amount. NaN, infinities, and negatives collapse to zero.
func sanitizeAmount(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int64(v)
}

// CatalogRepository provides read access to steps and menu item options.
type CatalogRepository struct {
	db *MongoDB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListSteps returns all customization steps sorted by ordinal.
func (r *CatalogRepository) ListSteps(ctx context.Context) ([]model.Step, error) {
	opts := options.Find().SetSort(bson.M{"step_number": 1})
	cursor, err := r.db.Steps.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []stepDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	steps := make([]model.Step, 0, len(docs))
	for _, d := range docs {
		steps = append(steps, model.Step{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			StepNumber:  sanitizeAmount(d.StepNumber),
			CategoryID:  d.CategoryID,
		})
	}
	return steps, nil
}

// ListOptions returns all menu item options, active and inactive alike.
// Inactive options must stay resolvable for previously saved
// compositions that reference them.
func (r *CatalogRepository) ListOptions(ctx context.Context) ([]model.Option, error) {
	cursor, err := r.db.MenuItems.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []optionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	opts := make([]model.Option, 0, len(docs))
	for _, d := range docs {
		opts = append(opts, model.Option{
			ID:         d.ID,
			Name:       d.Name,
			Price:      sanitizeAmount(d.Price),
			Cal:        sanitizeAmount(d.Cal),
			IsActive:   d.IsActive,
			ImageURL:   d.ImageURL,
			CategoryID: d.CategoryID,
		})
	}
	return opts, nil
}
