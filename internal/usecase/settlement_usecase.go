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

type SettlementUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Create(ctx context.Context, req *params.CreateSettlementRequest) (*entity.Settlement, *response.CustomError)
	Authorize(ctx context.Context, req *params.AuthorizeSettlementRequest) (*entity.Settlement, *response.CustomError)
}

type SettlementUsecaseImpl struct {
	repo   repository.SettlementRepository
	logger *logrus.Logger
	cache  *redis.Client
	table  schema.Table
}

func NewSettlementUsecase(repo repository.SettlementRepository, logger *logrus.Logger, cache *redis.Client) SettlementUsecase {
	return &SettlementUsecaseImpl{
		repo:   repo,
		logger: logger,
		cache:  cache,
		table:  schema.Settlements(),
	}
}

func (u *SettlementUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	key := listCacheKey(u.table.Entity, page)
	if cached := cachedPage(ctx, u.cache, u.logger, key); cached != nil {
		return cached, nil
	}

	settlements, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list settlements")
		return nil, response.RepositoryError("failed to list settlements")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		u.logger.WithError(err).Error("Failed to count settlements")
		return nil, response.RepositoryError("failed to count settlements")
	}

	resp := &params.PageResponse{
		Data:       settlements,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}
	storePage(ctx, u.cache, u.logger, key, resp)
	return resp, nil
}

func (u *SettlementUsecaseImpl) Create(ctx context.Context, req *params.CreateSettlementRequest) (*entity.Settlement, *response.CustomError) {
	if custErr := req.CheckPayload(); custErr != nil {
		return nil, custErr
	}

	settlement := &entity.Settlement{
		MerchantID: req.MerchantID,
		Amount:     req.Amount,
		Method:     req.Method,
		Status:     entity.SettlementStatusPending,
	}
	switch req.Method {
	case entity.SettlementMethodBank:
		settlement.AccountHolder = req.Bank.AccountHolder
		settlement.AccountNumber = req.Bank.AccountNumber
		settlement.IFSC = req.Bank.IFSC
		settlement.BankName = req.Bank.BankName
	case entity.SettlementMethodCrypto:
		settlement.WalletAddress = req.Crypto.WalletAddress
		settlement.Network = req.Crypto.Network
	}

	if err := u.repo.Create(ctx, settlement); err != nil {
		u.logger.WithError(err).Error("Failed to create settlement")
		return nil, response.RepositoryError("failed to create settlement")
	}

	invalidateListCache(ctx, u.cache, u.logger, u.table.Entity)

	u.logger.WithFields(logrus.Fields{
		"settlement_id": settlement.ID,
		"merchant_id":   settlement.MerchantID,
		"method":        settlement.Method,
	}).Info("Settlement created")

	return settlement, nil
}

func (u *SettlementUsecaseImpl) Authorize(ctx context.Context, req *params.AuthorizeSettlementRequest) (*entity.Settlement, *response.CustomError) {
	if custErr := req.CheckPayload(); custErr != nil {
		return nil, custErr
	}

	settlement, err := u.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("settlement not found")
		}
		return nil, response.RepositoryError("failed to load settlement")
	}

	if !settlement.Status.Allows(req.Action) {
		return nil, response.BadRequestError("action " + string(req.Action) + " not allowed for status " + string(settlement.Status))
	}

	switch req.Action {
	case entity.ActionApprove:
		settlement.Status = entity.SettlementStatusApproved
		settlement.Reference = req.Reference
		settlement.RejectReason = ""
	case entity.ActionReject:
		settlement.Status = entity.SettlementStatusRejected
		settlement.RejectReason = entity.RejectReason(req.Reason)
	case entity.ActionReset:
		settlement.Status = entity.SettlementStatusPending
		settlement.Reference = ""
		settlement.RejectReason = ""
	}

	if err := u.repo.UpdateAuthorization(ctx, settlement); err != nil {
		u.logger.WithError(err).WithField("settlement_id", settlement.ID).Error("Failed to update settlement")
		return nil, response.RepositoryError("failed to update settlement")
	}

	invalidateListCache(ctx, u.cache, u.logger, u.table.Entity)

	u.logger.WithFields(logrus.Fields{
		"settlement_id": settlement.ID,
		"action":        req.Action,
		"status":        settlement.Status,
	}).Info("Settlement authorization applied")

	return settlement, nil
}
