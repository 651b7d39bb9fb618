package usecase

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/schema"
)

type MerchantUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Mutate(ctx context.Context, req *params.MerchantMutationRequest) (*entity.Merchant, *response.CustomError)
	Lookup(ctx context.Context, req *params.LookupRequest) ([]params.LookupOption, *response.CustomError)
}

type MerchantUsecaseImpl struct {
	repo   repository.MerchantRepository
	logger *logrus.Logger
	cache  *redis.Client
	table  schema.Table
}

func NewMerchantUsecase(repo repository.MerchantRepository, logger *logrus.Logger, cache *redis.Client) MerchantUsecase {
	return &MerchantUsecaseImpl{
		repo:   repo,
		logger: logger,
		cache:  cache,
		table:  schema.Merchants(),
	}
}

func (u *MerchantUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	merchants, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list merchants")
		return nil, response.RepositoryError("failed to list merchants")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		return nil, response.RepositoryError("failed to count merchants")
	}

	return &params.PageResponse{
		Data:       merchants,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}, nil
}

// Mutate dispatches the console's single mutation envelope: method "post"
// creates, "update" modifies, "delete" removes the keyed rows.
func (u *MerchantUsecaseImpl) Mutate(ctx context.Context, req *params.MerchantMutationRequest) (*entity.Merchant, *response.CustomError) {
	switch req.Method {
	case params.MutationCreate:
		return u.create(ctx, req)
	case params.MutationUpdate:
		return u.update(ctx, req)
	case params.MutationDelete:
		if len(req.Key) == 0 {
			return nil, response.BadRequestError("delete requires at least one key")
		}
		if err := u.repo.Delete(ctx, req.Key); err != nil {
			return nil, response.RepositoryError("failed to delete merchants")
		}
		return nil, nil
	}
	return nil, response.BadRequestError("unknown mutation method")
}

func (u *MerchantUsecaseImpl) create(ctx context.Context, req *params.MerchantMutationRequest) (*entity.Merchant, *response.CustomError) {
	if req.Code == "" || req.Name == "" || req.Email == "" {
		return nil, response.BadRequestError("code, name and email are required")
	}

	merchant := &entity.Merchant{
		Code:       req.Code,
		Name:       req.Name,
		Email:      req.Email,
		Status:     entity.MerchantStatusActive,
		WebhookURL: req.WebhookURL,
	}
	if req.Status != "" {
		merchant.Status = entity.MerchantStatus(req.Status)
	}
	if req.PayinFeePct != nil {
		merchant.PayinFeePct = *req.PayinFeePct
	}
	if req.PayoutFeePct != nil {
		merchant.PayoutFeePct = *req.PayoutFeePct
	}
	if req.TestMode != nil {
		merchant.TestMode = *req.TestMode
	}

	if err := u.repo.Create(ctx, merchant); err != nil {
		u.logger.WithError(err).WithField("code", req.Code).Error("Failed to create merchant")
		return nil, response.RepositoryError("failed to create merchant")
	}

	u.logger.WithFields(logrus.Fields{
		"merchant_id": merchant.ID,
		"code":        merchant.Code,
	}).Info("Merchant created")

	return merchant, nil
}

func (u *MerchantUsecaseImpl) update(ctx context.Context, req *params.MerchantMutationRequest) (*entity.Merchant, *response.CustomError) {
	if req.ID == nil {
		return nil, response.BadRequestError("update requires an id")
	}

	merchant, err := u.repo.GetByID(ctx, *req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("merchant not found")
		}
		return nil, response.RepositoryError("failed to load merchant")
	}

	if req.Name != "" {
		merchant.Name = req.Name
	}
	if req.Email != "" {
		merchant.Email = req.Email
	}
	if req.Status != "" {
		merchant.Status = entity.MerchantStatus(req.Status)
	}
	if req.WebhookURL != "" {
		merchant.WebhookURL = req.WebhookURL
	}
	if req.PayinFeePct != nil {
		merchant.PayinFeePct = *req.PayinFeePct
	}
	if req.PayoutFeePct != nil {
		merchant.PayoutFeePct = *req.PayoutFeePct
	}
	if req.TestMode != nil {
		merchant.TestMode = *req.TestMode
	}

	if err := u.repo.Update(ctx, merchant); err != nil {
		return nil, response.RepositoryError("failed to update merchant")
	}
	return merchant, nil
}

func (u *MerchantUsecaseImpl) Lookup(ctx context.Context, req *params.LookupRequest) ([]params.LookupOption, *response.CustomError) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	options, err := u.repo.Lookup(ctx, req.Name, limit)
	if err != nil {
		u.logger.WithError(err).Error("Failed to lookup merchants")
		return nil, response.RepositoryError("failed to lookup merchants")
	}
	return options, nil
}
