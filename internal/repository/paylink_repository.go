package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"
)

type PaylinkRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Paylink, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	Create(ctx context.Context, paylink *entity.Paylink) error
}

type PaylinkRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewPaylinkRepository(db *gorm.DB, logger *logrus.Logger) PaylinkRepository {
	return &PaylinkRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PaylinkRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Paylink, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Paylink{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var paylinks []*entity.Paylink
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&paylinks).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list paylinks")
		return nil, fmt.Errorf("failed to list paylinks: %w", err)
	}
	return paylinks, nil
}

func (r *PaylinkRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Paylink{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count paylinks: %w", err)
	}
	return count, nil
}

func (r *PaylinkRepositoryImpl) Create(ctx context.Context, paylink *entity.Paylink) error {
	if err := r.db.WithContext(ctx).Create(paylink).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create paylink")
		return fmt.Errorf("failed to create paylink: %w", err)
	}
	return nil
}
