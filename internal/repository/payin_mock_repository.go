package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPayinRepository struct {
	mock.Mock
}

func (m *MockPayinRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Payin, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Payin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPayinRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPayinRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Payin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPayinRepository) UpdateAssignment(ctx context.Context, payin *entity.Payin) error {
	args := m.Called(ctx, payin)
	return args.Error(0)
}

func (m *MockPayinRepository) UpdateStatus(ctx context.Context, payin *entity.Payin) error {
	args := m.Called(ctx, payin)
	return args.Error(0)
}

func (m *MockPayinRepository) LookupPlayers(ctx context.Context, name string, limit int) ([]params.LookupOption, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]params.LookupOption), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPayinRepository) ListForExport(ctx context.Context, tbl schema.Table, filters map[string]interface{}, limit int) ([]*entity.Payin, error) {
	args := m.Called(ctx, tbl, filters, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Payin), args.Error(1)
	}
	return nil, args.Error(1)
}
