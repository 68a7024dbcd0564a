package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/metrics"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/repository"
)

// DeserializeDish converts a persisted dish back into the canonical
// in-memory selection. The nested steps shape takes priority; the flat
// selections shape is the fallback for documents written before the
// nested shape existed. A dish exposing neither shape yields an empty
// selection without error.
//
// Quantities that are absent in the stored document decode as zero and
// count as one; entries with non-positive identifiers are skipped.
func DeserializeDish(dish *model.Dish) *model.Selection {
	sel := model.NewSelection()
	if dish == nil {
		return sel
	}

	if len(dish.Steps) > 0 {
		for _, step := range dish.Steps {
			for _, item := range step.Items {
				if step.StepID <= 0 || item.MenuItemID <= 0 {
					continue
				}
				sel.Add(step.StepID, item.MenuItemID, normalizeQuantity(item.Quantity))
			}
		}
		return sel
	}

	for _, row := range dish.Selections {
		if row.StepID <= 0 || row.OptionID <= 0 {
			continue
		}
		sel.Add(row.StepID, row.OptionID, normalizeQuantity(row.Quantity))
	}
	return sel
}

// SelectionFromSubmission converts a submission payload into a selection,
// collapsing duplicate (step, item) entries into quantity increments.
func SelectionFromSubmission(groups []model.SubmissionStep) *model.Selection {
	sel := model.NewSelection()
	for _, g := range groups {
		for _, item := range g.Items {
			if g.StepID <= 0 || item.MenuItemID <= 0 {
				continue
			}
			sel.Add(g.StepID, item.MenuItemID, item.Quantity)
		}
	}
	return sel
}

// SerializeSelection converts a selection into the minimal submission
// shape: one group per step holding picks, steps without picks omitted
// entirely. Groups follow catalog step order for determinism; picks in
// steps the catalog no longer declares are appended in ascending step id
// order rather than dropped.
func SerializeSelection(sel *model.Selection, idx *CatalogIndex) []model.SubmissionStep {
	if sel == nil {
		return []model.SubmissionStep{}
	}

	groups := make([]model.SubmissionStep, 0, sel.TotalPicks())
	covered := make(map[int64]bool)

	appendGroup := func(stepID int64) {
		picks := sel.Picks(stepID)
		if len(picks) == 0 {
			return
		}
		items := make([]model.SubmissionItem, 0, len(picks))
		for _, p := range picks {
			items = append(items, model.SubmissionItem{MenuItemID: p.OptionID, Quantity: p.Quantity})
		}
		groups = append(groups, model.SubmissionStep{StepID: stepID, Items: items})
		covered[stepID] = true
	}

	if idx != nil {
		for _, step := range idx.StepsOrdered() {
			appendGroup(step.ID)
		}
	}
	for _, stepID := range sel.StepIDs() {
		if !covered[stepID] {
			appendGroup(stepID)
		}
	}

	return groups
}

// buildDishSteps renders a selection into the enriched nested shape that
// is persisted and served on reads. Names and prices come from the
// catalog; picks whose option cannot be resolved keep their identity and
// quantity with zero-valued display fields.
func buildDishSteps(sel *model.Selection, idx *CatalogIndex) []model.DishStep {
	groups := SerializeSelection(sel, idx)
	steps := make([]model.DishStep, 0, len(groups))

	for _, g := range groups {
		step := model.DishStep{StepID: g.StepID}
		if idx != nil {
			if s, ok := idx.Step(g.StepID); ok {
				step.StepName = s.Name
			}
		}
		for _, item := range g.Items {
			di := model.DishItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
			if idx != nil {
				if opt, ok := idx.ResolveOption(g.StepID, item.MenuItemID); ok {
					di.MenuItemName = opt.Name
					di.ExtraPrice = opt.Price
					di.Cal = opt.Cal
					di.ImageURL = opt.ImageURL
				}
			}
			step.Items = append(step.Items, di)
		}
		steps = append(steps, step)
	}

	return steps
}

// normalizeQuantity maps stored quantities into the valid pick range:
// a missing quantity decodes as zero and counts as one.
func normalizeQuantity(q int64) int64 {
	if q <= 0 {
		return 1
	}
	return q
}

// DishService defines the composition operations exposed over HTTP.
type DishService interface {
	ComposeDish(ctx context.Context, orderID string, req dto.ComposeDishRequest) (*model.Dish, model.Totals, error)
	UpdateDish(ctx context.Context, dishID string, req dto.UpdateDishRequest) (*model.Dish, model.Totals, error)
	GetDish(ctx context.Context, dishID string) (*model.Dish, model.Totals, error)
	ListOrderDishes(ctx context.Context, orderID string) ([]dto.DishResponse, error)
	Preview(ctx context.Context, groups []model.SubmissionStep) (model.Totals, []model.StepSummary, error)
}

// DishServiceImpl implements DishService over the dish repository and the
// catalog snapshot.
type DishServiceImpl struct {
	dishes     repository.DishRepositoryInterface
	catalog    CatalogService
	aggregator Aggregator
}

// NewDishService creates a new dish service.
func NewDishService(dishes repository.DishRepositoryInterface, catalog CatalogService, aggregator Aggregator) *DishServiceImpl {
	return &DishServiceImpl{
		dishes:     dishes,
		catalog:    catalog,
		aggregator: aggregator,
	}
}

// ComposeDish validates and persists a freshly composed custom dish.
// The stored dish carries isCustom and the enriched nested shape; the
// empty-composition violation is rejected before any write.
func (s *DishServiceImpl) ComposeDish(ctx context.Context, orderID string, req dto.ComposeDishRequest) (*model.Dish, model.Totals, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordDishSubmission("create", "validation_error")
		return nil, model.Totals{}, err
	}

	sel := SelectionFromSubmission(req.Selections)
	if !sel.HasAnySelection() {
		metrics.RecordDishSubmission("create", "validation_error")
		return nil, model.Totals{}, dto.ErrEmptyComposition
	}

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		metrics.RecordDishSubmission("create", "catalog_error")
		return nil, model.Totals{}, err
	}

	note := req.Note
	if note == "" {
		note = model.DefaultNote
	}

	dish := &model.Dish{
		OrderID:  orderID,
		Note:     note,
		IsCustom: true,
		Steps:    buildDishSteps(sel, idx),
	}

	dish, err = s.dishes.Insert(ctx, dish)
	if err != nil {
		metrics.RecordDishSubmission("create", "error")
		return nil, model.Totals{}, err
	}

	log.Info().
		Str("dish_id", dish.ID.Hex()).
		Str("order_id", orderID).
		Int("picks", sel.TotalPicks()).
		Msg("Dish composed")

	metrics.RecordDishSubmission("create", "success")
	return dish, s.aggregator.ComputeTotals(sel, idx), nil
}

// UpdateDish replaces an existing dish's composition from an edit-mode
// re-submission. No isCustom flag is written on this path.
func (s *DishServiceImpl) UpdateDish(ctx context.Context, dishID string, req dto.UpdateDishRequest) (*model.Dish, model.Totals, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordDishSubmission("update", "validation_error")
		return nil, model.Totals{}, err
	}

	sel := SelectionFromSubmission(req.Selections)
	if !sel.HasAnySelection() {
		metrics.RecordDishSubmission("update", "validation_error")
		return nil, model.Totals{}, dto.ErrEmptyComposition
	}

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		metrics.RecordDishSubmission("update", "catalog_error")
		return nil, model.Totals{}, err
	}

	note := req.Note
	if note == "" {
		note = model.DefaultNote
	}

	dish, err := s.dishes.UpdateComposition(ctx, dishID, note, buildDishSteps(sel, idx))
	if err != nil {
		metrics.RecordDishSubmission("update", "error")
		return nil, model.Totals{}, err
	}

	metrics.RecordDishSubmission("update", "success")
	return dish, s.aggregator.ComputeTotals(sel, idx), nil
}

// GetDish returns a dish in the nested read shape with derived totals.
func (s *DishServiceImpl) GetDish(ctx context.Context, dishID string) (*model.Dish, model.Totals, error) {
	dish, err := s.dishes.FindByID(ctx, dishID)
	if err != nil {
		return nil, model.Totals{}, err
	}

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		// Totals degrade to zero when the catalog cannot be loaded; the
		// stored composition is still served.
		log.Warn().Err(err).Str("dish_id", dishID).Msg("Catalog unavailable, serving dish without totals")
		return dish, model.Totals{}, nil
	}

	return dish, s.aggregator.ComputeTotals(DeserializeDish(dish), idx), nil
}

// ListOrderDishes returns all dishes on an order with derived totals.
func (s *DishServiceImpl) ListOrderDishes(ctx context.Context, orderID string) ([]dto.DishResponse, error) {
	dishes, err := s.dishes.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		idx = nil
	}

	out := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		dish := dishes[i]
		out = append(out, dto.DishResponse{
			Dish:   &dish,
			Totals: s.aggregator.ComputeTotals(DeserializeDish(&dish), idx),
		})
	}
	return out, nil
}

// Preview derives totals and per-step summaries for a composition that
// has not been persisted. Used for live price/calorie display while the
// customer is still in the wizard.
func (s *DishServiceImpl) Preview(ctx context.Context, groups []model.SubmissionStep) (model.Totals, []model.StepSummary, error) {
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return model.Totals{}, nil, err
	}

	sel := SelectionFromSubmission(groups)
	return s.aggregator.ComputeTotals(sel, idx), s.aggregator.StepSummaries(sel, idx), nil
}
