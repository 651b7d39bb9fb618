package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/commons/export"
	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/commons/timeutil"
	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/schema"
)

const exportRowLimit = 10000

type PayoutUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Authorize(ctx context.Context, req *params.AuthorizePayoutRequest) (*entity.Payout, *response.CustomError)
	Export(ctx context.Context, filters map[string]interface{}, w io.Writer) *response.CustomError
}

type PayoutUsecaseImpl struct {
	repo   repository.PayoutRepository
	logger *logrus.Logger
	cache  *redis.Client
	table  schema.Table
}

func NewPayoutUsecase(repo repository.PayoutRepository, logger *logrus.Logger, cache *redis.Client) PayoutUsecase {
	return &PayoutUsecaseImpl{
		repo:   repo,
		logger: logger,
		cache:  cache,
		table:  schema.Payouts(),
	}
}

func (u *PayoutUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
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

	payouts, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list payouts")
		return nil, response.RepositoryError("failed to list payouts")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		u.logger.WithError(err).Error("Failed to count payouts")
		return nil, response.RepositoryError("failed to count payouts")
	}

	resp := &params.PageResponse{
		Data:       payouts,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}
	storePage(ctx, u.cache, u.logger, key, resp)
	return resp, nil
}

func (u *PayoutUsecaseImpl) Authorize(ctx context.Context, req *params.AuthorizePayoutRequest) (*entity.Payout, *response.CustomError) {
	if custErr := req.CheckPayload(); custErr != nil {
		return nil, custErr
	}

	payout, err := u.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("payout not found")
		}
		u.logger.WithError(err).WithField("payout_id", req.ID).Error("Failed to load payout")
		return nil, response.RepositoryError("failed to load payout")
	}

	if !payout.Status.Allows(req.Action) {
		u.logger.WithFields(logrus.Fields{
			"payout_id": payout.ID,
			"status":    payout.Status,
			"action":    req.Action,
		}).Warn("Payout action not allowed in current status")
		return nil, response.BadRequestError("action " + string(req.Action) + " not allowed for status " + string(payout.Status))
	}

	switch req.Action {
	case entity.ActionApprove:
		payout.Status = entity.PayoutStatusSuccess
		payout.Method = entity.DisbursementMethod(req.Method)
		payout.UTR = req.UTR
		payout.RejectReason = ""
	case entity.ActionReject:
		payout.Status = entity.PayoutStatusFailed
		payout.RejectReason = entity.RejectReason(req.Reason)
	case entity.ActionReset:
		payout.Status = entity.PayoutStatusInitiated
		payout.Method = ""
		payout.UTR = ""
		payout.RejectReason = ""
	}

	if err := u.repo.UpdateAuthorization(ctx, payout); err != nil {
		u.logger.WithError(err).WithField("payout_id", payout.ID).Error("Failed to update payout")
		return nil, response.RepositoryError("failed to update payout")
	}

	invalidateListCache(ctx, u.cache, u.logger, u.table.Entity)

	u.logger.WithFields(logrus.Fields{
		"payout_id": payout.ID,
		"action":    req.Action,
		"status":    payout.Status,
	}).Info("Payout authorization applied")

	return payout, nil
}

func (u *PayoutUsecaseImpl) Export(ctx context.Context, filters map[string]interface{}, w io.Writer) *response.CustomError {
	cleaned, custErr := checkFilters(u.table, filters)
	if custErr != nil {
		return custErr
	}

	payouts, err := u.repo.ListForExport(ctx, u.table, cleaned, exportRowLimit)
	if err != nil {
		u.logger.WithError(err).Error("Failed to export payouts")
		return response.RepositoryError("failed to export payouts")
	}

	header := []string{"id", "merchant_order_id", "amount", "status", "method", "utr", "account_holder", "account_number", "ifsc", "created_at"}
	rows := make([][]string, len(payouts))
	for i, p := range payouts {
		created := p.CreatedAt
		rows[i] = []string{
			p.ID.String(),
			p.MerchantOrderID,
			p.Amount.StringFixed(2),
			string(p.Status),
			string(p.Method),
			p.UTR,
			p.AccountHolder,
			p.AccountNumber,
			p.IFSC,
			timeutil.UTCToIST(&created),
		}
	}
	if err := export.WriteCSV(w, header, rows); err != nil {
		u.logger.WithError(err).Error("Failed to write payout csv")
		return response.GeneralError("failed to write csv")
	}
	return nil
}
