// Package repository provides data access for persisted dishes.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

// ErrDishNotFound is returned when a dish id does not resolve to a document.
var ErrDishNotFound = errors.New("dish not found")

// ErrInvalidDishID is returned when a dish id is not a valid object id.
var ErrInvalidDishID = errors.New("invalid dish id")

// DishRepository provides CRUD access to dish documents.
type DishRepository struct {
	collection *mongo.Collection
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *MongoDB) *DishRepository {
	return &DishRepository{collection: db.Dishes}
}

// Insert stores a freshly composed dish and returns it with its assigned id.
func (r *DishRepository) Insert(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	if dish.ID.IsZero() {
		dish.ID = primitive.NewObjectID()
	}
	now := time.Now()
	dish.CreatedAt = now
	dish.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// FindByID returns the dish with the given hex id.
func (r *DishRepository) FindByID(ctx context.Context, id string) (*model.Dish, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidDishID
	}

	var dish model.Dish
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&dish)
	if err == mongo.ErrNoDocuments {
		return nil, ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// UpdateComposition replaces a dish's composition with the given wire
// shapes and returns the updated document. The flat selections shape is
// cleared when a nested shape is written: the nested shape is
// authoritative from that point on.
func (r *DishRepository) UpdateComposition(ctx context.Context, id string, note string, steps []model.DishStep) (*model.Dish, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidDishID
	}

	update := bson.M{
		"$set": bson.M{
			"note":       note,
			"steps":      steps,
			"updated_at": time.Now(),
		},
		"$unset": bson.M{"selections": ""},
	}

	var dish model.Dish
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&dish)
	if err == mongo.ErrNoDocuments {
		return nil, ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// ListByOrder returns all dishes on one order, oldest first.
func (r *DishRepository) ListByOrder(ctx context.Context, orderID string) ([]model.Dish, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"order_id": orderID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dishes []model.Dish
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}
