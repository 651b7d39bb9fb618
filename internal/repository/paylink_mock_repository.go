package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/stretchr/testify/mock"
)

type MockPaylinkRepository struct {
	mock.Mock
}

func (m *MockPaylinkRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Paylink, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Paylink), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaylinkRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaylinkRepository) Create(ctx context.Context, paylink *entity.Paylink) error {
	args := m.Called(ctx, paylink)
	return args.Error(0)
}
