// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

type MockDishRepositoryInterface struct {
	mock.Mock
}

func (m *MockDishRepositoryInterface) Insert(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	args := m.Called(ctx, dish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) FindByID(ctx context.Context, id string) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) UpdateComposition(ctx context.Context, id string, note string, steps []model.DishStep) (*model.Dish, error) {
	args := m.Called(ctx, id, note, steps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) ListByOrder(ctx context.Context, orderID string) ([]model.Dish, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}
