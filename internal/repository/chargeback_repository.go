package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"
)

type ChargebackRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Chargeback, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Chargeback, error)
	Create(ctx context.Context, chargeback *entity.Chargeback) error
	UpdateStatus(ctx context.Context, chargeback *entity.Chargeback) error
}

type ChargebackRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewChargebackRepository(db *gorm.DB, logger *logrus.Logger) ChargebackRepository {
	return &ChargebackRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ChargebackRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Chargeback, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Chargeback{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var chargebacks []*entity.Chargeback
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&chargebacks).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list chargebacks")
		return nil, fmt.Errorf("failed to list chargebacks: %w", err)
	}
	return chargebacks, nil
}

func (r *ChargebackRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Chargeback{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count chargebacks: %w", err)
	}
	return count, nil
}

func (r *ChargebackRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Chargeback, error) {
	var chargeback entity.Chargeback
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&chargeback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get chargeback: %w", err)
	}
	return &chargeback, nil
}

func (r *ChargebackRepositoryImpl) Create(ctx context.Context, chargeback *entity.Chargeback) error {
	if err := r.db.WithContext(ctx).Create(chargeback).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create chargeback")
		return fmt.Errorf("failed to create chargeback: %w", err)
	}
	return nil
}

func (r *ChargebackRepositoryImpl) UpdateStatus(ctx context.Context, chargeback *entity.Chargeback) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Chargeback{}).
		Where("id = ?", chargeback.ID).
		Updates(map[string]interface{}{
			"status": chargeback.Status,
			"reason": chargeback.Reason,
		}).Error
	if err != nil {
		r.logger.WithError(err).WithField("chargeback_id", chargeback.ID).Error("Failed to update chargeback status")
		return fmt.Errorf("failed to update chargeback: %w", err)
	}
	return nil
}
