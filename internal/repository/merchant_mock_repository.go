package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Merchant, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Merchant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMerchantRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Merchant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) Update(ctx context.Context, merchant *entity.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) Delete(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockMerchantRepository) Lookup(ctx context.Context, name string, limit int) ([]params.LookupOption, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]params.LookupOption), args.Error(1)
	}
	return nil, args.Error(1)
}
