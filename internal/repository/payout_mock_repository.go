package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Payout, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Payout), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPayoutRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Payout), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPayoutRepository) UpdateAuthorization(ctx context.Context, payout *entity.Payout) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

func (m *MockPayoutRepository) ListForExport(ctx context.Context, tbl schema.Table, filters map[string]interface{}, limit int) ([]*entity.Payout, error) {
	args := m.Called(ctx, tbl, filters, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Payout), args.Error(1)
	}
	return nil, args.Error(1)
}
