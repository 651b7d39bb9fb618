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

type SettlementRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Settlement, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error)
	Create(ctx context.Context, settlement *entity.Settlement) error
	UpdateAuthorization(ctx context.Context, settlement *entity.Settlement) error
}

type SettlementRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewSettlementRepository(db *gorm.DB, logger *logrus.Logger) SettlementRepository {
	return &SettlementRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SettlementRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Settlement, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Settlement{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var settlements []*entity.Settlement
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&settlements).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list settlements")
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, nil
}

func (r *SettlementRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Settlement{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count settlements: %w", err)
	}
	return count, nil
}

func (r *SettlementRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	var settlement entity.Settlement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&settlement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("settlement_id", id).Error("Failed to get settlement")
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return &settlement, nil
}

func (r *SettlementRepositoryImpl) Create(ctx context.Context, settlement *entity.Settlement) error {
	if err := r.db.WithContext(ctx).Create(settlement).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create settlement")
		return fmt.Errorf("failed to create settlement: %w", err)
	}
	return nil
}

func (r *SettlementRepositoryImpl) UpdateAuthorization(ctx context.Context, settlement *entity.Settlement) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Settlement{}).
		Where("id = ?", settlement.ID).
		Updates(map[string]interface{}{
			"status":        settlement.Status,
			"reference":     settlement.Reference,
			"reject_reason": settlement.RejectReason,
		}).Error
	if err != nil {
		r.logger.WithError(err).WithField("settlement_id", settlement.ID).Error("Failed to update settlement authorization")
		return fmt.Errorf("failed to update settlement: %w", err)
	}
	return nil
}
