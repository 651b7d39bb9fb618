package usecase_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/usecase"
	"go-payment-admin/pkg/token"
)

func setupAuthTest(t *testing.T) (*repository.MockAdminUserRepository, *miniredis.Miniredis, *token.TokenManager, usecase.AuthUsecase) {
	mockRepo := new(repository.MockAdminUserRepository)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	tm := token.NewTokenManager("test-secret", 1)
	uc := usecase.NewAuthUsecase(mockRepo, tm, rdb, logger)

	return mockRepo, mr, tm, uc
}

func hashPassword(t *testing.T, plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hashed)
}

func TestLogin_Success(t *testing.T) {
	mockRepo, _, tm, uc := setupAuthTest(t)

	userID := uuid.New()
	user := &entity.AdminUser{
		ID:       userID,
		Username: "ops",
		Password: hashPassword(t, "correct-horse"),
		Role:     entity.RoleOperator,
	}
	mockRepo.On("GetByUsername", mock.Anything, "ops").Return(user, nil)
	mockRepo.On("TouchLastLogin", mock.Anything, userID).Return(nil)

	resp, custErr := uc.Login(context.Background(), &params.LoginRequest{
		Username: "ops",
		Password: "correct-horse",
	})

	assert.Nil(t, custErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID, resp.User.ID)
	assert.Equal(t, "operator", resp.User.Role)

	payload, err := tm.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), payload.AuthId)
	assert.Equal(t, "operator", payload.Role)

	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo, _, _, uc := setupAuthTest(t)

	user := &entity.AdminUser{
		ID:       uuid.New(),
		Username: "ops",
		Password: hashPassword(t, "correct-horse"),
	}
	mockRepo.On("GetByUsername", mock.Anything, "ops").Return(user, nil)

	resp, custErr := uc.Login(context.Background(), &params.LoginRequest{
		Username: "ops",
		Password: "wrong",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, custErr)
	assert.Equal(t, 401, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	mockRepo, _, _, uc := setupAuthTest(t)

	mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, custErr := uc.Login(context.Background(), &params.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, custErr)
	assert.Equal(t, 401, custErr.StatusCode)
}

func TestLogout_RevokesToken(t *testing.T) {
	_, _, tm, uc := setupAuthTest(t)

	rawToken, err := tm.GenerateToken(uuid.New(), "operator")
	assert.NoError(t, err)

	assert.False(t, uc.IsRevoked(context.Background(), rawToken))

	custErr := uc.Logout(context.Background(), rawToken)
	assert.Nil(t, custErr)

	assert.True(t, uc.IsRevoked(context.Background(), rawToken))
}

func TestLogout_EmptyToken(t *testing.T) {
	_, _, _, uc := setupAuthTest(t)

	custErr := uc.Logout(context.Background(), "")
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)
}

func TestCurrentUser_ProjectsCapabilities(t *testing.T) {
	mockRepo, _, _, uc := setupAuthTest(t)

	userID := uuid.New()
	user := &entity.AdminUser{
		ID:          userID,
		Username:    "ops",
		Role:        entity.RoleOperator,
		Permissions: []string{"payin-list", "bank.acct-list"},
	}
	mockRepo.On("GetByID", mock.Anything, userID).Return(user, nil)

	resp, custErr := uc.CurrentUser(context.Background(), userID)

	assert.Nil(t, custErr)
	assert.Equal(t, "ops", resp.Username)
	assert.True(t, resp.Capabilities["canPayinList"])
	assert.True(t, resp.Capabilities["canBankAcctList"])
	assert.False(t, resp.Capabilities["canAdmin"])
}

func TestCurrentUser_AdminRole(t *testing.T) {
	mockRepo, _, _, uc := setupAuthTest(t)

	userID := uuid.New()
	user := &entity.AdminUser{
		ID:       userID,
		Username: "root",
		Role:     entity.RoleAdmin,
	}
	mockRepo.On("GetByID", mock.Anything, userID).Return(user, nil)

	resp, custErr := uc.CurrentUser(context.Background(), userID)

	assert.Nil(t, custErr)
	assert.True(t, resp.Capabilities["canAdmin"])
}

func TestCurrentUser_NotFound(t *testing.T) {
	mockRepo, _, _, uc := setupAuthTest(t)

	userID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	resp, custErr := uc.CurrentUser(context.Background(), userID)

	assert.Nil(t, resp)
	assert.NotNil(t, custErr)
	assert.Equal(t, 404, custErr.StatusCode)
}
