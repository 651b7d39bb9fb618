package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/schema"
)

type AgentUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Mutate(ctx context.Context, req *params.AgentMutationRequest) (*entity.Agent, *response.CustomError)
}

type AgentUsecaseImpl struct {
	repo   repository.AgentRepository
	logger *logrus.Logger
	table  schema.Table
}

func NewAgentUsecase(repo repository.AgentRepository, logger *logrus.Logger) AgentUsecase {
	return &AgentUsecaseImpl{
		repo:   repo,
		logger: logger,
		table:  schema.Agents(),
	}
}

func (u *AgentUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	agents, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list agents")
		return nil, response.RepositoryError("failed to list agents")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		return nil, response.RepositoryError("failed to count agents")
	}

	return &params.PageResponse{
		Data:       agents,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}, nil
}

func (u *AgentUsecaseImpl) Mutate(ctx context.Context, req *params.AgentMutationRequest) (*entity.Agent, *response.CustomError) {
	switch req.Method {
	case params.MutationCreate:
		if req.Name == "" || req.Email == "" {
			return nil, response.BadRequestError("name and email are required")
		}
		agent := &entity.Agent{
			Name:   req.Name,
			Email:  req.Email,
			Phone:  req.Phone,
			Status: entity.AgentStatusActive,
		}
		if req.Status != "" {
			agent.Status = entity.AgentStatus(req.Status)
		}
		if err := u.repo.Create(ctx, agent); err != nil {
			return nil, response.RepositoryError("failed to create agent")
		}
		u.logger.WithField("agent_id", agent.ID).Info("Agent created")
		return agent, nil

	case params.MutationUpdate:
		if req.ID == nil {
			return nil, response.BadRequestError("update requires an id")
		}
		agent, err := u.repo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NotFoundError("agent not found")
			}
			return nil, response.RepositoryError("failed to load agent")
		}
		if req.Name != "" {
			agent.Name = req.Name
		}
		if req.Email != "" {
			agent.Email = req.Email
		}
		if req.Phone != "" {
			agent.Phone = req.Phone
		}
		if req.Status != "" {
			agent.Status = entity.AgentStatus(req.Status)
		}
		if err := u.repo.Update(ctx, agent); err != nil {
			return nil, response.RepositoryError("failed to update agent")
		}
		return agent, nil

	case params.MutationDelete:
		if len(req.Key) == 0 {
			return nil, response.BadRequestError("delete requires at least one key")
		}
		if err := u.repo.Delete(ctx, req.Key); err != nil {
			return nil, response.RepositoryError("failed to delete agents")
		}
		return nil, nil
	}
	return nil, response.BadRequestError("unknown mutation method")
}
