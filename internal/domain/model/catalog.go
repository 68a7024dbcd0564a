// Package model defines the core domain entities for the composition service.
package model

// Option represents a selectable ingredient offered within a customization step.
//
// @Description Ingredient option with price and calorie attributes
// @Example {"id": 10, "name": "Grilled Chicken", "price": 20000, "cal": 150, "isActive": true}
type Option struct {
	// ID is the option identity within the catalog
	ID int64 `bson:"id" json:"id"`
	// Name is the display name shown to the customer
	Name string `bson:"name" json:"name"`
	// Price is the unit price in the smallest currency unit (VND)
	Price int64 `bson:"price" json:"price"`
	// Cal is the calorie count per unit; zero when the catalog omits it
	Cal int64 `bson:"cal" json:"cal"`
	// IsActive reports whether the option may be offered for new picks
	IsActive bool `bson:"is_active" json:"isActive"`
	// ImageURL is an optional image reference
	ImageURL string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	// CategoryID binds the option to the category a step draws from
	CategoryID int64 `bson:"category_id" json:"categoryId"`
}

// Step represents one ordered stage of dish customization.
// Steps are totally ordered by StepNumber; the active step at any time
// is a single cursor into this order.
type Step struct {
	ID          int64  `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	// StepNumber is the ordinal position used for strict sequencing
	StepNumber int64 `bson:"step_number" json:"stepNumber"`
	// CategoryID references the category whose options populate this step
	CategoryID int64 `bson:"category_id" json:"categoryId"`
}

// Totals holds the derived price and calorie aggregate for one composition.
// Totals are always re-derived from a Selection and the catalog, never stored.
//
// @Description Derived price and calorie totals for a dish composition
// @Example {"totalPrice": 30000, "totalCalories": 250}
type Totals struct {
	TotalPrice    int64 `json:"totalPrice"`
	TotalCalories int64 `json:"totalCalories"`
}

// Add accumulates price and calories for quantity units of an option.
// Negative inputs are clamped to zero so malformed catalog data can
// never drive a running total below zero.
func (t *Totals) Add(price, cal, quantity int64) {
	if quantity <= 0 {
		return
	}
	if price > 0 {
		t.TotalPrice += price * quantity
	}
	if cal > 0 {
		t.TotalCalories += cal * quantity
	}
}

// StepSummary is a per-step display summary used on order review screens.
type StepSummary struct {
	StepID   int64             `json:"stepId"`
	StepName string            `json:"stepName"`
	Items    []StepSummaryItem `json:"items"`
	Subtotal int64             `json:"subtotal"`
}

// StepSummaryItem is one resolved pick inside a StepSummary.
type StepSummaryItem struct {
	OptionID int64  `json:"optionId"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}
