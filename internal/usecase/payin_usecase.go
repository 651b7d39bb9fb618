package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
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

type PayinUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Assign(ctx context.Context, id uuid.UUID, req *params.AssignPayinRequest) (*entity.Payin, *response.CustomError)
	Confirm(ctx context.Context, id uuid.UUID, req *params.ConfirmPayinRequest) (*entity.Payin, *response.CustomError)
	LookupPlayers(ctx context.Context, req *params.LookupRequest) ([]params.LookupOption, *response.CustomError)
	Export(ctx context.Context, filters map[string]interface{}, w io.Writer) *response.CustomError
}

type PayinUsecaseImpl struct {
	repo   repository.PayinRepository
	logger *logrus.Logger
	cache  *redis.Client
	table  schema.Table
}

func NewPayinUsecase(repo repository.PayinRepository, logger *logrus.Logger, cache *redis.Client) PayinUsecase {
	return &PayinUsecaseImpl{
		repo:   repo,
		logger: logger,
		cache:  cache,
		table:  schema.Payins(),
	}
}

func (u *PayinUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
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

	payins, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list payins")
		return nil, response.RepositoryError("failed to list payins")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		u.logger.WithError(err).Error("Failed to count payins")
		return nil, response.RepositoryError("failed to count payins")
	}

	resp := &params.PageResponse{
		Data:       payins,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}
	storePage(ctx, u.cache, u.logger, key, resp)
	return resp, nil
}

func (u *PayinUsecaseImpl) Assign(ctx context.Context, id uuid.UUID, req *params.AssignPayinRequest) (*entity.Payin, *response.CustomError) {
	payin, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("payin not found")
		}
		return nil, response.RepositoryError("failed to load payin")
	}

	if !payin.Status.CanTransitionTo(entity.PayinStatusAssigned) {
		return nil, response.BadRequestError("payin with status " + string(payin.Status) + " cannot be assigned")
	}

	payin.Status = entity.PayinStatusAssigned
	payin.AgentID = &req.AgentID
	payin.BankAccountID = req.BankAccountID

	if err := u.repo.UpdateAssignment(ctx, payin); err != nil {
		u.logger.WithError(err).WithField("payin_id", payin.ID).Error("Failed to assign payin")
		return nil, response.RepositoryError("failed to assign payin")
	}

	invalidateListCache(ctx, u.cache, u.logger, u.table.Entity)

	u.logger.WithFields(logrus.Fields{
		"payin_id": payin.ID,
		"agent_id": req.AgentID,
	}).Info("Payin assigned")

	return payin, nil
}

func (u *PayinUsecaseImpl) Confirm(ctx context.Context, id uuid.UUID, req *params.ConfirmPayinRequest) (*entity.Payin, *response.CustomError) {
	if custErr := req.CheckPayload(); custErr != nil {
		return nil, custErr
	}

	payin, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("payin not found")
		}
		return nil, response.RepositoryError("failed to load payin")
	}

	if !payin.Status.CanTransitionTo(req.Status) {
		return nil, response.BadRequestError("payin cannot move from " + string(payin.Status) + " to " + string(req.Status))
	}

	payin.Status = req.Status
	if req.UTR != "" {
		payin.UTR = req.UTR
	}

	if err := u.repo.UpdateStatus(ctx, payin); err != nil {
		u.logger.WithError(err).WithField("payin_id", payin.ID).Error("Failed to confirm payin")
		return nil, response.RepositoryError("failed to confirm payin")
	}

	invalidateListCache(ctx, u.cache, u.logger, u.table.Entity)

	u.logger.WithFields(logrus.Fields{
		"payin_id": payin.ID,
		"status":   payin.Status,
	}).Info("Payin confirmed")

	return payin, nil
}

func (u *PayinUsecaseImpl) LookupPlayers(ctx context.Context, req *params.LookupRequest) ([]params.LookupOption, *response.CustomError) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	options, err := u.repo.LookupPlayers(ctx, req.Name, limit)
	if err != nil {
		u.logger.WithError(err).Error("Failed to lookup players")
		return nil, response.RepositoryError("failed to lookup players")
	}
	return options, nil
}

func (u *PayinUsecaseImpl) Export(ctx context.Context, filters map[string]interface{}, w io.Writer) *response.CustomError {
	cleaned, custErr := checkFilters(u.table, filters)
	if custErr != nil {
		return custErr
	}

	payins, err := u.repo.ListForExport(ctx, u.table, cleaned, exportRowLimit)
	if err != nil {
		u.logger.WithError(err).Error("Failed to export payins")
		return response.RepositoryError("failed to export payins")
	}

	header := []string{"id", "merchant_order_id", "amount", "status", "utr", "player_id", "created_at"}
	rows := make([][]string, len(payins))
	for i, p := range payins {
		created := p.CreatedAt
		rows[i] = []string{
			p.ID.String(),
			p.MerchantOrderID,
			p.Amount.StringFixed(2),
			string(p.Status),
			p.UTR,
			p.PlayerID,
			timeutil.UTCToIST(&created),
		}
	}
	if err := export.WriteCSV(w, header, rows); err != nil {
		u.logger.WithError(err).Error("Failed to write payin csv")
		return response.GeneralError("failed to write csv")
	}
	return nil
}
