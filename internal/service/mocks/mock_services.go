package mocks

import (
	"context"
	"io"

	"sigtransportes/internal/model"
	"sigtransportes/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Add(ctx context.Context, title, area, docType string, r io.Reader, filename string, size int64) (*model.Document, error) {
	args := m.Called(ctx, title, area, docType, r, filename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) FileURL(ctx context.Context, fileRef string) (string, error) {
	args := m.Called(ctx, fileRef)
	return args.String(0), args.Error(1)
}

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Add(ctx context.Context, title, area, content string) (*model.Record, error) {
	args := m.Called(ctx, title, area, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) List(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*service.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardStats), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Send(ctx context.Context, from, to, subject, body string) error {
	args := m.Called(ctx, from, to, subject, body)
	return args.Error(0)
}
