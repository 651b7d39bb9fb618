package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/schema"
)

type PaylinkUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Create(ctx context.Context, req *params.CreatePaylinkRequest) (*entity.Paylink, *response.CustomError)
}

type PaylinkUsecaseImpl struct {
	repo   repository.PaylinkRepository
	logger *logrus.Logger
	table  schema.Table
}

func NewPaylinkUsecase(repo repository.PaylinkRepository, logger *logrus.Logger) PaylinkUsecase {
	return &PaylinkUsecaseImpl{
		repo:   repo,
		logger: logger,
		table:  schema.Paylinks(),
	}
}

func (u *PaylinkUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	paylinks, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list paylinks")
		return nil, response.RepositoryError("failed to list paylinks")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		return nil, response.RepositoryError("failed to count paylinks")
	}

	return &params.PageResponse{
		Data:       paylinks,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}, nil
}

func (u *PaylinkUsecaseImpl) Create(ctx context.Context, req *params.CreatePaylinkRequest) (*entity.Paylink, *response.CustomError) {
	if custErr := req.CheckPayload(); custErr != nil {
		return nil, custErr
	}

	code, err := paylinkCode()
	if err != nil {
		u.logger.WithError(err).Error("Failed to generate paylink code")
		return nil, response.GeneralError("failed to generate paylink code")
	}

	paylink := &entity.Paylink{
		MerchantID: req.MerchantID,
		Code:       code,
		OneTime:    req.OneTime,
		Amount:     req.Amount,
		Contact:    req.Contact,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     entity.PaylinkStatusActive,
	}

	if err := u.repo.Create(ctx, paylink); err != nil {
		return nil, response.RepositoryError("failed to create paylink")
	}

	u.logger.WithFields(logrus.Fields{
		"paylink_id": paylink.ID,
		"code":       paylink.Code,
		"one_time":   paylink.OneTime,
	}).Info("Paylink created")

	return paylink, nil
}

func paylinkCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
