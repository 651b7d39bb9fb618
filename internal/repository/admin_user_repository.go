package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"
)

type AdminUserRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.AdminUser, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	Create(ctx context.Context, user *entity.AdminUser) error
	Update(ctx context.Context, user *entity.AdminUser) error
	Delete(ctx context.Context, ids []uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewAdminUserRepository(db *gorm.DB, logger *logrus.Logger) AdminUserRepository {
	return &AdminUserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AdminUserRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.AdminUser, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.AdminUser{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var users []*entity.AdminUser
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&users).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list admin users")
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}
	return users, nil
}

func (r *AdminUserRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.AdminUser{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count admin users: %w", err)
	}
	return count, nil
}

func (r *AdminUserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var user entity.AdminUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("user_id", id).Error("Failed to get admin user")
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &user, nil
}

func (r *AdminUserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	var user entity.AdminUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("username", username).Error("Failed to get admin user by username")
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &user, nil
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, user *entity.AdminUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.WithError(err).WithField("username", user.Username).Error("Failed to create admin user")
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepositoryImpl) Update(ctx context.Context, user *entity.AdminUser) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to update admin user")
		return fmt.Errorf("failed to update admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepositoryImpl) Delete(ctx context.Context, ids []uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.AdminUser{}, "id IN ?", ids).Error; err != nil {
		r.logger.WithError(err).Error("Failed to delete admin users")
		return fmt.Errorf("failed to delete admin users: %w", err)
	}
	return nil
}

func (r *AdminUserRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&entity.AdminUser{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to record login time: %w", err)
	}
	return nil
}
