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

type BankAccountRepository interface {
	List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.BankAccount, error)
	Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error)
	Create(ctx context.Context, account *entity.BankAccount) error
	Update(ctx context.Context, account *entity.BankAccount) error
	Delete(ctx context.Context, ids []uuid.UUID) error
}

type BankAccountRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewBankAccountRepository(db *gorm.DB, logger *logrus.Logger) BankAccountRepository {
	return &BankAccountRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *BankAccountRepositoryImpl) List(ctx context.Context, tbl schema.Table, page *params.PageRequest) ([]*entity.BankAccount, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.BankAccount{}), tbl, page.Filters)
	if err != nil {
		return nil, err
	}

	var accounts []*entity.BankAccount
	err = applyOrder(db, tbl, page).
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&accounts).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

func (r *BankAccountRepositoryImpl) Count(ctx context.Context, tbl schema.Table, filters map[string]interface{}) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(&entity.BankAccount{}), tbl, filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bank accounts: %w", err)
	}
	return count, nil
}

func (r *BankAccountRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	var account entity.BankAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	return &account, nil
}

func (r *BankAccountRepositoryImpl) Create(ctx context.Context, account *entity.BankAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		r.logger.WithError(err).WithField("account_number", account.AccountNumber).Error("Failed to create bank account")
		return fmt.Errorf("failed to create bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepositoryImpl) Update(ctx context.Context, account *entity.BankAccount) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		r.logger.WithError(err).WithField("bank_account_id", account.ID).Error("Failed to update bank account")
		return fmt.Errorf("failed to update bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepositoryImpl) Delete(ctx context.Context, ids []uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.BankAccount{}, "id IN ?", ids).Error; err != nil {
		r.logger.WithError(err).Error("Failed to delete bank accounts")
		return fmt.Errorf("failed to delete bank accounts: %w", err)
	}
	return nil
}
