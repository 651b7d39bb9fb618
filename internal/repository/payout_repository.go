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

type PayoutRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Payout, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error)
	UpdateAuthorization(ctx context.Context, payout *entity.Payout) error
	ListForExport(ctx context.Context, tbl schema.Table, filters map[string]interface{}, limit int) ([]*entity.Payout, error)
}

type PayoutRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewPayoutRepository(db *gorm.DB, logger *logrus.Logger) PayoutRepository {
	return &PayoutRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PayoutRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Payout, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Payout{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var payouts []*entity.Payout
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&payouts).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list payouts")
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

func (r *PayoutRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Payout{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payouts: %w", err)
	}
	return count, nil
}

func (r *PayoutRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	var payout entity.Payout
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("payout_id", id).Error("Failed to get payout")
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}
	return &payout, nil
}

func (r *PayoutRepositoryImpl) UpdateAuthorization(ctx context.Context, payout *entity.Payout) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Payout{}).
		Where("id = ?", payout.ID).
		Updates(map[string]interface{}{
			"status":        payout.Status,
			"method":        payout.Method,
			"utr":           payout.UTR,
			"reject_reason": payout.RejectReason,
		}).Error
	if err != nil {
		r.logger.WithError(err).WithField("payout_id", payout.ID).Error("Failed to update payout authorization")
		return fmt.Errorf("failed to update payout: %w", err)
	}
	return nil
}

func (r *PayoutRepositoryImpl) ListForExport(ctx context.Context, tbl schema.Table, filters map[string]interface{}, limit int) ([]*entity.Payout, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Payout{}), tbl, filters)
	if err != nil {
		return nil, err
	}

	var payouts []*entity.Payout
	if err := db.Order("created_at DESC").Limit(limit).Find(&payouts).Error; err != nil {
		return nil, fmt.Errorf("failed to export payouts: %w", err)
	}
	return payouts, nil
}
