package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-payment-admin/internal/access"
	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/pkg/token"
)

const revokedTokenPrefix = "revoked:"

type AuthUsecase interface {
	Login(ctx context.Context, req *params.LoginRequest) (*params.AuthResponse, *response.CustomError)
	Logout(ctx context.Context, rawToken string) *response.CustomError
	CurrentUser(ctx context.Context, userID uuid.UUID) (*params.CurrentUserResponse, *response.CustomError)
	IsRevoked(ctx context.Context, rawToken string) bool
}

type AuthUsecaseImpl struct {
	users    repository.AdminUserRepository
	tokenMgr *token.TokenManager
	redis    *redis.Client
	logger   *logrus.Logger
}

func NewAuthUsecase(users repository.AdminUserRepository, tokenMgr *token.TokenManager, redisClient *redis.Client, logger *logrus.Logger) AuthUsecase {
	return &AuthUsecaseImpl{
		users:    users,
		tokenMgr: tokenMgr,
		redis:    redisClient,
		logger:   logger,
	}
}

func (u *AuthUsecaseImpl) Login(ctx context.Context, req *params.LoginRequest) (*params.AuthResponse, *response.CustomError) {
	user, err := u.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.UnauthorizedError("invalid username or password")
		}
		u.logger.WithError(err).Error("Failed to load user for login")
		return nil, response.RepositoryError("failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		u.logger.WithField("username", req.Username).Warn("Login failed, wrong password")
		return nil, response.UnauthorizedError("invalid username or password")
	}

	tokenStr, err := u.tokenMgr.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		u.logger.WithError(err).Error("Failed to sign token")
		return nil, response.GeneralError("failed to sign token")
	}

	if err := u.users.TouchLastLogin(ctx, user.ID); err != nil {
		// login still succeeds, last_login_at is informational
		u.logger.WithError(err).Warn("Failed to record login time")
	}

	resp := &params.AuthResponse{Token: tokenStr}
	resp.User.ID = user.ID
	resp.User.Username = user.Username
	resp.User.Role = string(user.Role)

	u.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User logged in")
	return resp, nil
}

// Logout places the raw token on a redis denylist until it would have
// expired anyway. The auth middleware rejects denylisted tokens.
func (u *AuthUsecaseImpl) Logout(ctx context.Context, rawToken string) *response.CustomError {
	if rawToken == "" {
		return response.BadRequestError("missing token")
	}
	if u.redis == nil {
		return nil
	}

	ttl := u.tokenMgr.Expiry()
	if payload, err := u.tokenMgr.ValidateToken(rawToken); err == nil {
		if remaining := time.Until(payload.Expired); remaining > 0 {
			ttl = remaining
		}
	}

	if err := u.redis.Set(ctx, revokedTokenPrefix+rawToken, "1", ttl).Err(); err != nil {
		u.logger.WithError(err).Error("Failed to revoke token")
		return response.GeneralError("failed to revoke token")
	}
	return nil
}

func (u *AuthUsecaseImpl) IsRevoked(ctx context.Context, rawToken string) bool {
	if u.redis == nil {
		return false
	}
	n, err := u.redis.Exists(ctx, revokedTokenPrefix+rawToken).Result()
	if err != nil {
		u.logger.WithError(err).Warn("Failed to check token revocation")
		return false
	}
	return n > 0
}

func (u *AuthUsecaseImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*params.CurrentUserResponse, *response.CustomError) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("user not found")
		}
		return nil, response.RepositoryError("failed to load user")
	}

	return &params.CurrentUserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Role:         string(user.Role),
		Permissions:  user.Permissions,
		Capabilities: access.Project(string(user.Role), user.Permissions),
		LastLoginAt:  user.LastLoginAt,
	}, nil
}
