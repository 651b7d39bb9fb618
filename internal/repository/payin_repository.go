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

type PayinRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Payin, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payin, error)
	UpdateAssignment(ctx context.Context, payin *entity.Payin) error
	UpdateStatus(ctx context.Context, payin *entity.Payin) error
	LookupPlayers(ctx context.Context, name string, limit int) ([]params.LookupOption, error)
	ListForExport(ctx context.Context, tbl schema.Table, filters map[string]interface{}, limit int) ([]*entity.Payin, error)
}

type PayinRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewPayinRepository(db *gorm.DB, logger *logrus.Logger) PayinRepository {
	return &PayinRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PayinRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Payin, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Payin{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var payins []*entity.Payin
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&payins).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list payins")
		return nil, fmt.Errorf("failed to list payins: %w", err)
	}
	return payins, nil
}

func (r *PayinRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Payin{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payins: %w", err)
	}
	return count, nil
}

func (r *PayinRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payin, error) {
	var payin entity.Payin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("payin_id", id).Error("Failed to get payin")
		return nil, fmt.Errorf("failed to get payin: %w", err)
	}
	return &payin, nil
}

func (r *PayinRepositoryImpl) UpdateAssignment(ctx context.Context, payin *entity.Payin) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Payin{}).
		Where("id = ?", payin.ID).
		Updates(map[string]interface{}{
			"status":          payin.Status,
			"agent_id":        payin.AgentID,
			"bank_account_id": payin.BankAccountID,
		}).Error
	if err != nil {
		r.logger.WithError(err).WithField("payin_id", payin.ID).Error("Failed to assign payin")
		return fmt.Errorf("failed to assign payin: %w", err)
	}
	return nil
}

func (r *PayinRepositoryImpl) UpdateStatus(ctx context.Context, payin *entity.Payin) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Payin{}).
		Where("id = ?", payin.ID).
		Updates(map[string]interface{}{
			"status": payin.Status,
			"utr":    payin.UTR,
		}).Error
	if err != nil {
		r.logger.WithError(err).WithField("payin_id", payin.ID).Error("Failed to update payin status")
		return fmt.Errorf("failed to update payin: %w", err)
	}
	return nil
}

func (r *PayinRepositoryImpl) LookupPlayers(ctx context.Context, name string, limit int) ([]params.LookupOption, error) {
	var players []string
	err := r.db.WithContext(ctx).
		Model(&entity.Payin{}).
		Distinct("player_id").
		Where("player_id LIKE ?", "%"+name+"%").
		Order("player_id").
		Limit(limit).
		Pluck("player_id", &players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lookup players: %w", err)
	}

	options := make([]params.LookupOption, len(players))
	for i, p := range players {
		options[i] = params.LookupOption{Label: p, Value: p}
	}
	return options, nil
}

func (r *PayinRepositoryImpl) ListForExport(ctx context.Context, tbl schema.Table, filters map[string]interface{}, limit int) ([]*entity.Payin, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Payin{}), tbl, filters)
	if err != nil {
		return nil, err
	}

	var payins []*entity.Payin
	if err := db.Order("created_at DESC").Limit(limit).Find(&payins).Error; err != nil {
		return nil, fmt.Errorf("failed to export payins: %w", err)
	}
	return payins, nil
}
