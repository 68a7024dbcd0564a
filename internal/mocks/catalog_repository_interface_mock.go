// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) ListSteps(ctx context.Context) ([]model.Step, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Step), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListOptions(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}
