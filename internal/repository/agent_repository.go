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

type AgentRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Agent, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error)
	Create(ctx context.Context, agent *entity.Agent) error
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, ids []uuid.UUID) error
}

type AgentRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewAgentRepository(db *gorm.DB, logger *logrus.Logger) AgentRepository {
	return &AgentRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AgentRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.Agent, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Agent{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var agents []*entity.Agent
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&agents).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list agents")
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (r *AgentRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.Agent{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count agents: %w", err)
	}
	return count, nil
}

func (r *AgentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	var agent entity.Agent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return &agent, nil
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, agent *entity.Agent) error {
	if err := r.db.WithContext(ctx).Create(agent).Error; err != nil {
		r.logger.WithError(err).WithField("email", agent.Email).Error("Failed to create agent")
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, agent *entity.Agent) error {
	if err := r.db.WithContext(ctx).Save(agent).Error; err != nil {
		r.logger.WithError(err).WithField("agent_id", agent.ID).Error("Failed to update agent")
		return fmt.Errorf("failed to update agent: %w", err)
	}
	return nil
}

func (r *AgentRepositoryImpl) Delete(ctx context.Context, ids []uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Agent{}, "id IN ?", ids).Error; err != nil {
		r.logger.WithError(err).Error("Failed to delete agents")
		return fmt.Errorf("failed to delete agents: %w", err)
	}
	return nil
}
