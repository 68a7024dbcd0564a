package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/mocks"
)

// stubCatalog serves a fixed snapshot without hitting a repository.
type stubCatalog struct {
	idx *CatalogIndex
	err error
}

func (s *stubCatalog) Index(_ context.Context) (*CatalogIndex, error) { return s.idx, s.err }

func (s *stubCatalog) StepsWithOptions(_ context.Context) ([]dto.CatalogStepResponse, error) {
	return nil, s.err
}

func (s *stubCatalog) Invalidate() {}

func TestDeserializeDish(t *testing.T) {
	tests := []struct {
		name string
		dish *model.Dish
		want map[int64]map[int64]int64 // stepID -> optionID -> quantity
	}{
		{
			name: "nested steps shape",
			dish: &model.Dish{
				Steps: []model.DishStep{
					{StepID: 10, Items: []model.DishItem{{MenuItemID: 1, Quantity: 1}}},
					{StepID: 30, Items: []model.DishItem{{MenuItemID: 4, Quantity: 2}}},
				},
			},
			want: map[int64]map[int64]int64{10: {1: 1}, 30: {4: 2}},
		},
		{
			name: "flat selections fallback",
			dish: &model.Dish{
				Selections: []model.DishSelection{
					{StepID: 10, OptionID: 1, Quantity: 1},
					{StepID: 30, OptionID: 4, Quantity: 2},
					{StepID: 30, OptionID: 4, Quantity: 1}, // duplicate merges
				},
			},
			want: map[int64]map[int64]int64{10: {1: 1}, 30: {4: 3}},
		},
		{
			name: "nested wins over flat when both present",
			dish: &model.Dish{
				Steps:      []model.DishStep{{StepID: 10, Items: []model.DishItem{{MenuItemID: 1, Quantity: 5}}}},
				Selections: []model.DishSelection{{StepID: 30, OptionID: 4, Quantity: 2}},
			},
			want: map[int64]map[int64]int64{10: {1: 5}},
		},
		{
			name: "missing quantity counts as one",
			dish: &model.Dish{
				Steps: []model.DishStep{{StepID: 10, Items: []model.DishItem{{MenuItemID: 1}}}},
			},
			want: map[int64]map[int64]int64{10: {1: 1}},
		},
		{
			name: "neither shape yields empty selection",
			dish: &model.Dish{},
			want: map[int64]map[int64]int64{},
		},
		{
			name: "nil dish yields empty selection",
			dish: nil,
			want: map[int64]map[int64]int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := DeserializeDish(tt.dish)

			picks := 0
			for stepID, byOption := range tt.want {
				for optionID, qty := range byOption {
					assert.Equal(t, qty, sel.Quantity(stepID, optionID))
					picks++
				}
			}
			assert.Equal(t, picks, sel.TotalPicks())
		})
	}
}

func TestSelectionFromSubmission(t *testing.T) {
	groups := []model.SubmissionStep{
		{StepID: 20, Items: []model.SubmissionItem{
			{MenuItemID: 2, Quantity: 1},
			{MenuItemID: 2, Quantity: 2}, // duplicate collapses
		}},
		{StepID: 10, Items: []model.SubmissionItem{{MenuItemID: 1, Quantity: 1}}},
		{StepID: 0, Items: []model.SubmissionItem{{MenuItemID: 9, Quantity: 1}}},  // invalid step skipped
		{StepID: 30, Items: []model.SubmissionItem{{MenuItemID: 4, Quantity: 0}}}, // non-positive skipped
	}

	sel := SelectionFromSubmission(groups)
	assert.Equal(t, int64(3), sel.Quantity(20, 2))
	assert.Equal(t, int64(1), sel.Quantity(10, 1))
	assert.Equal(t, 2, sel.TotalPicks())
}

func TestSerializeSelection(t *testing.T) {
	idx := newTestCatalogIndex()

	t.Run("omits empty steps and follows catalog order", func(t *testing.T) {
		sel := model.NewSelection()
		sel.Add(30, 4, 2)
		sel.Add(10, 1, 1)

		groups := SerializeSelection(sel, idx)
		require.Len(t, groups, 2)
		assert.Equal(t, int64(10), groups[0].StepID)
		assert.Equal(t, int64(30), groups[1].StepID)
		require.Len(t, groups[1].Items, 1)
		assert.Equal(t, model.SubmissionItem{MenuItemID: 4, Quantity: 2}, groups[1].Items[0])
	})

	t.Run("unknown steps append after catalog steps", func(t *testing.T) {
		sel := model.NewSelection()
		sel.Add(77, 5, 1)
		sel.Add(20, 2, 1)

		groups := SerializeSelection(sel, idx)
		require.Len(t, groups, 2)
		assert.Equal(t, int64(20), groups[0].StepID)
		assert.Equal(t, int64(77), groups[1].StepID)
	})

	t.Run("empty selection serializes to no groups", func(t *testing.T) {
		assert.Empty(t, SerializeSelection(model.NewSelection(), idx))
		assert.Empty(t, SerializeSelection(nil, idx))
	})

	t.Run("round trip through dish shape", func(t *testing.T) {
		sel := model.NewSelection()
		sel.Add(10, 1, 1)
		sel.Add(20, 2, 1)
		sel.Add(20, 3, 2)

		dish := &model.Dish{Steps: buildDishSteps(sel, idx)}
		back := DeserializeDish(dish)

		assert.Equal(t, sel.TotalPicks(), back.TotalPicks())
		for _, stepID := range sel.StepIDs() {
			for _, p := range sel.Picks(stepID) {
				assert.Equal(t, p.Quantity, back.Quantity(stepID, p.OptionID))
			}
		}
	})
}

func TestBuildDishSteps_Enrichment(t *testing.T) {
	idx := newTestCatalogIndex()

	sel := model.NewSelection()
	sel.Add(20, 2, 1)
	sel.Add(20, 999, 1) // unresolvable

	steps := buildDishSteps(sel, idx)
	require.Len(t, steps, 1)
	assert.Equal(t, "Protein", steps[0].StepName)
	require.Len(t, steps[0].Items, 2)

	assert.Equal(t, "Grilled Chicken", steps[0].Items[0].MenuItemName)
	assert.Equal(t, int64(20000), steps[0].Items[0].ExtraPrice)

	// Unresolvable picks keep identity and quantity, zero display fields.
	assert.Equal(t, int64(999), steps[0].Items[1].MenuItemID)
	assert.Empty(t, steps[0].Items[1].MenuItemName)
	assert.Zero(t, steps[0].Items[1].ExtraPrice)
}

func TestDishService_ComposeDish(t *testing.T) {
	idx := newTestCatalogIndex()

	validReq := dto.ComposeDishRequest{
		Selections: []model.SubmissionStep{
			{StepID: 10, Items: []model.SubmissionItem{{MenuItemID: 1, Quantity: 1}}},
			{StepID: 20, Items: []model.SubmissionItem{{MenuItemID: 2, Quantity: 1}}},
			{StepID: 30, Items: []model.SubmissionItem{{MenuItemID: 4, Quantity: 2}}},
		},
	}

	t.Run("persists enriched dish with defaults", func(t *testing.T) {
		repo := new(mocks.MockDishRepositoryInterface)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(d *model.Dish) bool {
			return d.OrderID == "order-1" &&
				d.Note == model.DefaultNote &&
				d.IsCustom &&
				len(d.Steps) == 3
		})).Return(&model.Dish{ID: primitive.NewObjectID(), OrderID: "order-1"}, nil)

		svc := NewDishService(repo, &stubCatalog{idx: idx}, NewTotalsAggregator())
		dish, totals, err := svc.ComposeDish(context.Background(), "order-1", validReq)

		require.NoError(t, err)
		assert.False(t, dish.ID.IsZero())
		assert.Equal(t, model.Totals{TotalPrice: 30000, TotalCalories: 250}, totals)
		repo.AssertExpectations(t)
	})

	t.Run("keeps customer note", func(t *testing.T) {
		repo := new(mocks.MockDishRepositoryInterface)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(d *model.Dish) bool {
			return d.Note == "less spicy"
		})).Return(&model.Dish{}, nil)

		req := validReq
		req.Note = "less spicy"

		svc := NewDishService(repo, &stubCatalog{idx: idx}, NewTotalsAggregator())
		_, _, err := svc.ComposeDish(context.Background(), "order-1", req)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects composition without picks", func(t *testing.T) {
		repo := new(mocks.MockDishRepositoryInterface)
		svc := NewDishService(repo, &stubCatalog{idx: idx}, NewTotalsAggregator())

		req := dto.ComposeDishRequest{
			Selections: []model.SubmissionStep{
				{StepID: 10, Items: []model.SubmissionItem{{MenuItemID: 1, Quantity: 1}}},
			},
		}
		req.Selections[0].Items[0].Quantity = 0

		_, _, err := svc.ComposeDish(context.Background(), "order-1", req)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestDishService_UpdateDish(t *testing.T) {
	idx := newTestCatalogIndex()

	repo := new(mocks.MockDishRepositoryInterface)
	repo.On("UpdateComposition", mock.Anything, "dish-1", "extra sauce", mock.MatchedBy(func(steps []model.DishStep) bool {
		return len(steps) == 1 && steps[0].StepID == 20
	})).Return(&model.Dish{Note: "extra sauce"}, nil)

	svc := NewDishService(repo, &stubCatalog{idx: idx}, NewTotalsAggregator())
	dish, totals, err := svc.UpdateDish(context.Background(), "dish-1", dto.UpdateDishRequest{
		Note: "extra sauce",
		Selections: []model.SubmissionStep{
			{StepID: 20, Items: []model.SubmissionItem{{MenuItemID: 3, Quantity: 1}}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "extra sauce", dish.Note)
	assert.Equal(t, model.Totals{TotalPrice: 12000, TotalCalories: 90}, totals)
	repo.AssertExpectations(t)
}

func TestDishService_GetDish(t *testing.T) {
	idx := newTestCatalogIndex()

	stored := &model.Dish{
		Steps: []model.DishStep{
			{StepID: 10, Items: []model.DishItem{{MenuItemID: 1, Quantity: 1}}},
		},
	}

	t.Run("serves dish with derived totals", func(t *testing.T) {
		repo := new(mocks.MockDishRepositoryInterface)
		repo.On("FindByID", mock.Anything, "dish-1").Return(stored, nil)

		svc := NewDishService(repo, &stubCatalog{idx: idx}, NewTotalsAggregator())
		dish, totals, err := svc.GetDish(context.Background(), "dish-1")

		require.NoError(t, err)
		assert.Equal(t, stored, dish)
		assert.Equal(t, model.Totals{TotalPrice: 5000, TotalCalories: 150}, totals)
	})

	t.Run("catalog outage degrades totals to zero", func(t *testing.T) {
		repo := new(mocks.MockDishRepositoryInterface)
		repo.On("FindByID", mock.Anything, "dish-1").Return(stored, nil)

		svc := NewDishService(repo, &stubCatalog{err: assert.AnError}, NewTotalsAggregator())
		dish, totals, err := svc.GetDish(context.Background(), "dish-1")

		require.NoError(t, err)
		assert.Equal(t, stored, dish)
		assert.Equal(t, model.Totals{}, totals)
	})
}

func TestDishService_Preview(t *testing.T) {
	idx := newTestCatalogIndex()
	svc := NewDishService(new(mocks.MockDishRepositoryInterface), &stubCatalog{idx: idx}, NewTotalsAggregator())

	totals, summaries, err := svc.Preview(context.Background(), []model.SubmissionStep{
		{StepID: 10, Items: []model.SubmissionItem{{MenuItemID: 1, Quantity: 1}}},
		{StepID: 30, Items: []model.SubmissionItem{{MenuItemID: 4, Quantity: 2}}},
	})

	require.NoError(t, err)
	assert.Equal(t, model.Totals{TotalPrice: 10000, TotalCalories: 170}, totals)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Bread", summaries[0].StepName)
}
