package mocks

import (
	"context"

	"sigtransportes/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) List(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}
