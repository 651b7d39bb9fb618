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

type BankAccountUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Mutate(ctx context.Context, req *params.BankAccountMutationRequest) (*entity.BankAccount, *response.CustomError)
}

type BankAccountUsecaseImpl struct {
	repo   repository.BankAccountRepository
	logger *logrus.Logger
	table  schema.Table
}

func NewBankAccountUsecase(repo repository.BankAccountRepository, logger *logrus.Logger) BankAccountUsecase {
	return &BankAccountUsecaseImpl{
		repo:   repo,
		logger: logger,
		table:  schema.BankAccounts(),
	}
}

func (u *BankAccountUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	accounts, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list bank accounts")
		return nil, response.RepositoryError("failed to list bank accounts")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		return nil, response.RepositoryError("failed to count bank accounts")
	}

	return &params.PageResponse{
		Data:       accounts,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}, nil
}

func (u *BankAccountUsecaseImpl) Mutate(ctx context.Context, req *params.BankAccountMutationRequest) (*entity.BankAccount, *response.CustomError) {
	switch req.Method {
	case params.MutationCreate:
		if req.AccountHolder == "" || req.AccountNumber == "" || req.IFSC == "" || req.BankName == "" {
			return nil, response.BadRequestError("account holder, number, ifsc and bank name are required")
		}
		account := &entity.BankAccount{
			AgentID:       req.AgentID,
			AccountHolder: req.AccountHolder,
			AccountNumber: req.AccountNumber,
			IFSC:          req.IFSC,
			BankName:      req.BankName,
			UPIID:         req.UPIID,
			Status:        entity.BankAccountStatusActive,
		}
		if req.MinAmount != nil {
			account.MinAmount = *req.MinAmount
		}
		if req.MaxAmount != nil {
			account.MaxAmount = *req.MaxAmount
		}
		if req.MinAmount != nil && req.MaxAmount != nil && req.MaxAmount.LessThan(*req.MinAmount) {
			return nil, response.BadRequestError("max_amount must not be below min_amount")
		}
		if req.Status != "" {
			account.Status = entity.BankAccountStatus(req.Status)
		}
		if err := u.repo.Create(ctx, account); err != nil {
			return nil, response.RepositoryError("failed to create bank account")
		}
		u.logger.WithField("bank_account_id", account.ID).Info("Bank account created")
		return account, nil

	case params.MutationUpdate:
		if req.ID == nil {
			return nil, response.BadRequestError("update requires an id")
		}
		account, err := u.repo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NotFoundError("bank account not found")
			}
			return nil, response.RepositoryError("failed to load bank account")
		}
		if req.AgentID != nil {
			account.AgentID = req.AgentID
		}
		if req.AccountHolder != "" {
			account.AccountHolder = req.AccountHolder
		}
		if req.AccountNumber != "" {
			account.AccountNumber = req.AccountNumber
		}
		if req.IFSC != "" {
			account.IFSC = req.IFSC
		}
		if req.BankName != "" {
			account.BankName = req.BankName
		}
		if req.UPIID != "" {
			account.UPIID = req.UPIID
		}
		if req.MinAmount != nil {
			account.MinAmount = *req.MinAmount
		}
		if req.MaxAmount != nil {
			account.MaxAmount = *req.MaxAmount
		}
		if account.MaxAmount.Sign() > 0 && account.MaxAmount.LessThan(account.MinAmount) {
			return nil, response.BadRequestError("max_amount must not be below min_amount")
		}
		if req.Status != "" {
			account.Status = entity.BankAccountStatus(req.Status)
		}
		if err := u.repo.Update(ctx, account); err != nil {
			return nil, response.RepositoryError("failed to update bank account")
		}
		return account, nil

	case params.MutationDelete:
		if len(req.Key) == 0 {
			return nil, response.BadRequestError("delete requires at least one key")
		}
		if err := u.repo.Delete(ctx, req.Key); err != nil {
			return nil, response.RepositoryError("failed to delete bank accounts")
		}
		return nil, nil
	}
	return nil, response.BadRequestError("unknown mutation method")
}
