package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Settlement, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Settlement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSettlementRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Settlement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSettlementRepository) Create(ctx context.Context, settlement *entity.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) UpdateAuthorization(ctx context.Context, settlement *entity.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}
