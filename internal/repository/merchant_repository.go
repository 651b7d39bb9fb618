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

type MerchantRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Merchant, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
	Create(ctx context.Context, merchant *entity.Merchant) error
	Update(ctx context.Context, merchant *entity.Merchant) error
	Delete(ctx context.Context, ids []uuid.UUID) error
	Lookup(ctx context.Context, name string, limit int) ([]params.LookupOption, error)
}

type MerchantRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewMerchantRepository(db *gorm.DB, logger *logrus.Logger) MerchantRepository {
	return &MerchantRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *MerchantRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Merchant, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Merchant{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var merchants []*entity.Merchant
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&merchants).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list merchants")
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return merchants, nil
}

func (r *MerchantRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Merchant{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count merchants: %w", err)
	}
	return count, nil
}

func (r *MerchantRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchant entity.Merchant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&merchant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("merchant_id", id).Error("Failed to get merchant")
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}

func (r *MerchantRepositoryImpl) Create(ctx context.Context, merchant *entity.Merchant) error {
	if err := r.db.WithContext(ctx).Create(merchant).Error; err != nil {
		r.logger.WithError(err).WithField("code", merchant.Code).Error("Failed to create merchant")
		return fmt.Errorf("failed to create merchant: %w", err)
	}
	return nil
}

func (r *MerchantRepositoryImpl) Update(ctx context.Context, merchant *entity.Merchant) error {
	if err := r.db.WithContext(ctx).Save(merchant).Error; err != nil {
		r.logger.WithError(err).WithField("merchant_id", merchant.ID).Error("Failed to update merchant")
		return fmt.Errorf("failed to update merchant: %w", err)
	}
	return nil
}

func (r *MerchantRepositoryImpl) Delete(ctx context.Context, ids []uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Merchant{}, "id IN ?", ids).Error; err != nil {
		r.logger.WithError(err).Error("Failed to delete merchants")
		return fmt.Errorf("failed to delete merchants: %w", err)
	}
	return nil
}

func (r *MerchantRepositoryImpl) Lookup(ctx context.Context, name string, limit int) ([]params.LookupOption, error) {
	var merchants []*entity.Merchant
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR code LIKE ?", "%"+name+"%", "%"+name+"%").
		Order("name").
		Limit(limit).
		Find(&merchants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lookup merchants: %w", err)
	}

	options := make([]params.LookupOption, len(merchants))
	for i, m := range merchants {
		options[i] = params.LookupOption{Label: m.Name, Value: m.Code}
	}
	return options, nil
}
