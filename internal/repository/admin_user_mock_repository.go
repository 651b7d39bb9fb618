package repository

import (
	"context"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.AdminUser, error) {
	args := m.Called(ctx, tbl, page)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.AdminUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminUserRepository) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	args := m.Called(ctx, tbl, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.AdminUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminUserRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.AdminUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) Update(ctx context.Context, user *entity.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) Delete(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockAdminUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
