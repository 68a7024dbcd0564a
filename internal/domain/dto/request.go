// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"

// ComposeDishRequest is the JSON body for composing a new custom dish on
// an order. It carries the minimal submission shape: names and prices are
// re-derived server-side from the catalog.
//
// @Description Request to compose a custom dish from step/item/quantity groups
// @Example {"note": "less spicy", "selections": [{"stepId": 1, "items": [{"menuItemId": 10, "quantity": 1}]}], "isCustom": true}
type ComposeDishRequest struct {
	// Note is an optional customer note; a fixed placeholder is stored when empty.
	Note string `json:"note"`
	// Selections groups picked items by step; skipped steps are omitted entirely.
	Selections []model.SubmissionStep `json:"selections" binding:"required,min=1,dive"`
	// IsCustom marks a freshly composed dish. Set on first creation only,
	// never on an edit-mode update.
	IsCustom bool `json:"isCustom,omitempty"`
} // @name ComposeDishRequest

// UpdateDishRequest is the JSON body for re-submitting an edited
// composition of an existing dish. It carries no isCustom flag.
type UpdateDishRequest struct {
	Note       string                 `json:"note"`
	Selections []model.SubmissionStep `json:"selections" binding:"required,min=1,dive"`
} // @name UpdateDishRequest

// MutatePickRequest is the JSON body for the cart-side single-pick
// mutation of an already-placed dish.
//
// Quantity has removal semantics at or below zero, so it intentionally
// carries no gt binding; the non-empty-dish invariant is enforced by the
// cart service before any write.
//
// @Description Request to change one ingredient's quantity on a placed dish
// @Example {"stepId": 1, "optionId": 10, "quantity": 2}
type MutatePickRequest struct {
	StepID   int64 `json:"stepId" binding:"required"`
	OptionID int64 `json:"optionId" binding:"required"`
	Quantity int64 `json:"quantity"`
} // @name MutatePickRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptyComposition is returned when a submission or mutation would
	// leave a dish with zero picks across all steps.
	ErrEmptyComposition = &ValidationError{
		Field:   "selections",
		Message: "at least one ingredient is required",
	}

	// ErrInvalidPickTarget is returned when a step or option identity is
	// missing or non-positive.
	ErrInvalidPickTarget = &ValidationError{
		Field:   "selections",
		Message: "stepId and menuItemId must be positive integers",
	}

	// ErrInvalidQuantity is returned when a submitted quantity is not a
	// positive integer.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validateSelections applies the submission-shape rules shared by compose
// and update requests.
func validateSelections(groups []model.SubmissionStep) error {
	total := 0
	for _, g := range groups {
		if g.StepID <= 0 {
			return ErrInvalidPickTarget
		}
		for _, it := range g.Items {
			if it.MenuItemID <= 0 {
				return ErrInvalidPickTarget
			}
			if it.Quantity <= 0 {
				return ErrInvalidQuantity
			}
			total++
		}
	}
	if total == 0 {
		return ErrEmptyComposition
	}
	return nil
}

// Validate performs custom validation on the compose request.
func (r *ComposeDishRequest) Validate() error {
	return validateSelections(r.Selections)
}

// Validate performs custom validation on the update request.
func (r *UpdateDishRequest) Validate() error {
	return validateSelections(r.Selections)
}

// Validate performs custom validation on the mutation request.
// Quantity is deliberately unconstrained: zero and below mean removal.
func (r *MutatePickRequest) Validate() error {
	if r.StepID <= 0 || r.OptionID <= 0 {
		return ErrInvalidPickTarget
	}
	return nil
}
