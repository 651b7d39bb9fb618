package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/schema"
)

type ChargebackUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Resolve(ctx context.Context, id uuid.UUID, req *params.ResolveChargebackRequest) (*entity.Chargeback, *response.CustomError)
}

type ChargebackUsecaseImpl struct {
	repo   repository.ChargebackRepository
	logger *logrus.Logger
	table  schema.Table
}

func NewChargebackUsecase(repo repository.ChargebackRepository, logger *logrus.Logger) ChargebackUsecase {
	return &ChargebackUsecaseImpl{
		repo:   repo,
		logger: logger,
		table:  schema.Chargebacks(),
	}
}

func (u *ChargebackUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	chargebacks, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list chargebacks")
		return nil, response.RepositoryError("failed to list chargebacks")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		return nil, response.RepositoryError("failed to count chargebacks")
	}

	return &params.PageResponse{
		Data:       chargebacks,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}, nil
}

func (u *ChargebackUsecaseImpl) Resolve(ctx context.Context, id uuid.UUID, req *params.ResolveChargebackRequest) (*entity.Chargeback, *response.CustomError) {
	chargeback, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("chargeback not found")
		}
		return nil, response.RepositoryError("failed to load chargeback")
	}

	if !chargeback.Status.CanTransitionTo(req.Status) {
		return nil, response.BadRequestError("chargeback cannot move from " + string(chargeback.Status) + " to " + string(req.Status))
	}

	chargeback.Status = req.Status
	if req.Reason != "" {
		chargeback.Reason = req.Reason
	}

	if err := u.repo.UpdateStatus(ctx, chargeback); err != nil {
		u.logger.WithError(err).WithField("chargeback_id", chargeback.ID).Error("Failed to resolve chargeback")
		return nil, response.RepositoryError("failed to resolve chargeback")
	}

	u.logger.WithFields(logrus.Fields{
		"chargeback_id": chargeback.ID,
		"status":        chargeback.Status,
	}).Info("Chargeback resolved")

	return chargeback, nil
}
