package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/metrics"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/repository"
)

// CartService mutates the composition of a dish that already sits in an
// order, without routing the customer back through the wizard.
type CartService interface {
	ChangePickQuantity(ctx context.Context, dishID string, req dto.MutatePickRequest) (*model.Dish, model.Totals, error)
}

// CartServiceImpl implements CartService over the dish repository.
type CartServiceImpl struct {
	dishes     repository.DishRepositoryInterface
	catalog    CatalogService
	aggregator Aggregator
}

// NewCartService creates a new cart service.
func NewCartService(dishes repository.DishRepositoryInterface, catalog CatalogService, aggregator Aggregator) *CartServiceImpl {
	return &CartServiceImpl{
		dishes:     dishes,
		catalog:    catalog,
		aggregator: aggregator,
	}
}

// ChangePickQuantity sets the quantity of one pick on a persisted dish.
// A non-positive quantity removes the pick; a positive quantity on an
// absent pick inserts it. The dish is decoded through the same
// dual-shape adapter used on reads, so flat legacy documents are
// upgraded to the nested shape on their first mutation.
//
// A mutation that would leave the dish with no picks at all is rejected
// with dto.ErrEmptyComposition before anything is written; removing a
// dish entirely is a delete, not a quantity change.
func (s *CartServiceImpl) ChangePickQuantity(ctx context.Context, dishID string, req dto.MutatePickRequest) (*model.Dish, model.Totals, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordPickMutation("validation_error")
		return nil, model.Totals{}, err
	}

	dish, err := s.dishes.FindByID(ctx, dishID)
	if err != nil {
		metrics.RecordPickMutation("not_found")
		return nil, model.Totals{}, err
	}

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		metrics.RecordPickMutation("catalog_error")
		return nil, model.Totals{}, err
	}

	sel := DeserializeDish(dish)
	if !dish.HasComposition() {
		// A dish carrying neither composition shape has nothing to
		// mutate; serve it back untouched.
		log.Warn().Str("dish_id", dishID).Msg("Pick mutation on dish without composition, no-op")
		metrics.RecordPickMutation("noop")
		return dish, s.aggregator.ComputeTotals(sel, idx), nil
	}

	sel.SetQuantity(req.StepID, req.OptionID, req.Quantity)
	if !sel.HasAnySelection() {
		metrics.RecordPickMutation("rejected_empty")
		return nil, model.Totals{}, dto.ErrEmptyComposition
	}

	updated, err := s.dishes.UpdateComposition(ctx, dishID, dish.Note, buildDishSteps(sel, idx))
	if err != nil {
		metrics.RecordPickMutation("error")
		return nil, model.Totals{}, err
	}

	log.Info().
		Str("dish_id", dishID).
		Int64("step_id", req.StepID).
		Int64("option_id", req.OptionID).
		Int64("quantity", req.Quantity).
		Msg("Pick quantity changed")

	metrics.RecordPickMutation("success")
	return updated, s.aggregator.ComputeTotals(sel, idx), nil
}
