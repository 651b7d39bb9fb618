package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/schema"
)

type AdminUserUsecase interface {
	List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError)
	Mutate(ctx context.Context, req *params.AdminUserMutationRequest) (*entity.AdminUser, *response.CustomError)
}

type AdminUserUsecaseImpl struct {
	repo   repository.AdminUserRepository
	logger *logrus.Logger
	table  schema.Table
}

func NewAdminUserUsecase(repo repository.AdminUserRepository, logger *logrus.Logger) AdminUserUsecase {
	return &AdminUserUsecaseImpl{
		repo:   repo,
		logger: logger,
		table:  schema.AdminUsers(),
	}
}

func (u *AdminUserUsecaseImpl) List(ctx context.Context, page *params.PageRequest) (*params.PageResponse, *response.CustomError) {
	page.Normalize()

	cleaned, custErr := checkFilters(u.table, page.Filters)
	if custErr != nil {
		return nil, custErr
	}
	page.Filters = cleaned

	users, err := u.repo.List(ctx, u.table, page)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list admin users")
		return nil, response.RepositoryError("failed to list admin users")
	}
	total, err := u.repo.Count(ctx, u.table, page.Filters)
	if err != nil {
		return nil, response.RepositoryError("failed to count admin users")
	}

	return &params.PageResponse{
		Data:       users,
		Total:      total,
		Current:    page.Current,
		PageSize:   page.PageSize,
		TotalPages: totalPages(total, page.PageSize),
	}, nil
}

func (u *AdminUserUsecaseImpl) Mutate(ctx context.Context, req *params.AdminUserMutationRequest) (*entity.AdminUser, *response.CustomError) {
	switch req.Method {
	case params.MutationCreate:
		if req.Username == "" || req.Password == "" {
			return nil, response.BadRequestError("username and password are required")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.logger.WithError(err).Error("Failed to hash password")
			return nil, response.GeneralError("failed to hash password")
		}
		user := &entity.AdminUser{
			Username:    req.Username,
			Password:    string(hashed),
			Role:        entity.RoleOperator,
			Permissions: req.Permissions,
			MerchantID:  req.MerchantID,
		}
		if req.Role != "" {
			user.Role = entity.Role(req.Role)
		}
		if err := u.repo.Create(ctx, user); err != nil {
			return nil, response.RepositoryError("failed to create admin user")
		}
		u.logger.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		}).Info("Admin user created")
		return user, nil

	case params.MutationUpdate:
		if req.ID == nil {
			return nil, response.BadRequestError("update requires an id")
		}
		user, err := u.repo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NotFoundError("admin user not found")
			}
			return nil, response.RepositoryError("failed to load admin user")
		}
		if req.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, response.GeneralError("failed to hash password")
			}
			user.Password = string(hashed)
		}
		if req.Role != "" {
			user.Role = entity.Role(req.Role)
		}
		if req.Permissions != nil {
			user.Permissions = req.Permissions
		}
		if req.MerchantID != nil {
			user.MerchantID = req.MerchantID
		}
		if err := u.repo.Update(ctx, user); err != nil {
			return nil, response.RepositoryError("failed to update admin user")
		}
		return user, nil

	case params.MutationDelete:
		if len(req.Key) == 0 {
			return nil, response.BadRequestError("delete requires at least one key")
		}
		if err := u.repo.Delete(ctx, req.Key); err != nil {
			return nil, response.RepositoryError("failed to delete admin users")
		}
		return nil, nil
	}
	return nil, response.BadRequestError("unknown mutation method")
}
