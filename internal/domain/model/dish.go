package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultNote is the placeholder stored when a dish is submitted without
// a customer note.
const DefaultNote = "No note"

// DishItem is one resolved pick inside the nested read shape of a dish.
type DishItem struct {
	MenuItemID   int64  `bson:"menu_item_id" json:"menuItemId"`
	MenuItemName string `bson:"menu_item_name,omitempty" json:"menuItemName,omitempty"`
	Quantity     int64  `bson:"quantity" json:"quantity"`
	ExtraPrice   int64  `bson:"extra_price,omitempty" json:"extraPrice,omitempty"`
	Cal          int64  `bson:"cal,omitempty" json:"cal,omitempty"`
	ImageURL     string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// DishStep groups the items picked in one step of the nested read shape.
type DishStep struct {
	StepID   int64      `bson:"step_id" json:"stepId"`
	StepName string     `bson:"step_name,omitempty" json:"stepName,omitempty"`
	Items    []DishItem `bson:"items" json:"items"`
}

// DishSelection is one entry of the flat read shape: the same pick
// information as DishStep/DishItem, flattened to one row per pick.
type DishSelection struct {
	StepID     int64  `bson:"step_id" json:"stepId"`
	StepName   string `bson:"step_name,omitempty" json:"stepName,omitempty"`
	OptionID   int64  `bson:"option_id" json:"optionId"`
	OptionName string `bson:"option_name,omitempty" json:"optionName,omitempty"`
	Quantity   int64  `bson:"quantity" json:"quantity"`
	ExtraPrice int64  `bson:"extra_price,omitempty" json:"extraPrice,omitempty"`
}

// Dish is a persisted order line holding one custom composition.
//
// The backend historically produced two wire representations of the same
// composition: the nested Steps shape and the flat Selections shape.
// Steps is authoritative on read; Selections survives for documents
// written before the nested shape existed. A dish exposing neither shape
// deserializes to an empty selection without error.
type Dish struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID    string             `bson:"order_id" json:"orderId"`
	Note       string             `bson:"note" json:"note"`
	IsCustom   bool               `bson:"is_custom,omitempty" json:"isCustom,omitempty"`
	Steps      []DishStep         `bson:"steps,omitempty" json:"steps,omitempty"`
	Selections []DishSelection    `bson:"selections,omitempty" json:"selections,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// HasComposition reports whether the dish carries either wire shape.
func (d *Dish) HasComposition() bool {
	return len(d.Steps) > 0 || len(d.Selections) > 0
}

// SubmissionItem is the minimal per-pick payload accepted on write.
type SubmissionItem struct {
	MenuItemID int64 `bson:"menu_item_id" json:"menuItemId" binding:"required"`
	Quantity   int64 `bson:"quantity" json:"quantity" binding:"required,gt=0"`
}

// SubmissionStep is one step group of the submission shape. Steps the
// customer skipped are omitted from the payload entirely, never sent as
// empty groups.
type SubmissionStep struct {
	StepID int64            `bson:"step_id" json:"stepId" binding:"required"`
	Items  []SubmissionItem `bson:"items" json:"items" binding:"required,min=1,dive"`
}
