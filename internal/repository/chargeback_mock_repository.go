package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockChargebackRepository struct {
	mock.Mock
}

func (m *MockChargebackRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Chargeback, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Chargeback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChargebackRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChargebackRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Chargeback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Chargeback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChargebackRepository) Create(ctx context.Context, chargeback *entity.Chargeback) error {
	args := m.Called(ctx, chargeback)
	return args.Error(0)
}

func (m *MockChargebackRepository) UpdateStatus(ctx context.Context, chargeback *entity.Chargeback) error {
	args := m.Called(ctx, chargeback)
	return args.Error(0)
}
