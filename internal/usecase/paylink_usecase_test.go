package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/usecase"
)

func setupPaylinkTest(t *testing.T) (*repository.MockPaylinkRepository, usecase.PaylinkUsecase) {
	mockRepo := new(repository.MockPaylinkRepository)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	uc := usecase.NewPaylinkUsecase(mockRepo, logger)

	return mockRepo, uc
}

func TestPaylinkCreate_OneTime(t *testing.T) {
	mockRepo, uc := setupPaylinkTest(t)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Paylink")).Return(nil)

	amount := decimal.NewFromInt(2500)
	req := &params.CreatePaylinkRequest{
		MerchantID: uuid.New(),
		OneTime:    true,
		Amount:     &amount,
		Contact:    "Ravi Kumar",
		Email:      "ravi@example.com",
		Phone:      "+919800000001",
	}
	paylink, custErr := uc.Create(context.Background(), req)

	assert.Nil(t, custErr)
	assert.True(t, paylink.OneTime)
	assert.True(t, paylink.Amount.Equal(amount))
	assert.Equal(t, "Ravi Kumar", paylink.Contact)
	assert.Equal(t, entity.PaylinkStatusActive, paylink.Status)
	assert.Len(t, paylink.Code, 16)

	mockRepo.AssertExpectations(t)
}

func TestPaylinkCreate_OneTimeRequiresPositiveAmount(t *testing.T) {
	mockRepo, uc := setupPaylinkTest(t)

	zero := decimal.Zero
	cases := []*params.CreatePaylinkRequest{
		{MerchantID: uuid.New(), OneTime: true, Contact: "Ravi Kumar"},
		{MerchantID: uuid.New(), OneTime: true, Amount: &zero, Contact: "Ravi Kumar"},
	}
	for _, req := range cases {
		paylink, custErr := uc.Create(context.Background(), req)

		assert.Nil(t, paylink)
		assert.NotNil(t, custErr)
		assert.Equal(t, 400, custErr.StatusCode)
	}

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaylinkCreate_OneTimeRequiresContact(t *testing.T) {
	mockRepo, uc := setupPaylinkTest(t)

	amount := decimal.NewFromInt(1000)
	req := &params.CreatePaylinkRequest{
		MerchantID: uuid.New(),
		OneTime:    true,
		Amount:     &amount,
	}
	paylink, custErr := uc.Create(context.Background(), req)

	assert.Nil(t, paylink)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaylinkCreate_Reusable(t *testing.T) {
	mockRepo, uc := setupPaylinkTest(t)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Paylink")).Return(nil)

	req := &params.CreatePaylinkRequest{
		MerchantID: uuid.New(),
	}
	paylink, custErr := uc.Create(context.Background(), req)

	assert.Nil(t, custErr)
	assert.False(t, paylink.OneTime)
	assert.Nil(t, paylink.Amount)
	assert.Empty(t, paylink.Contact)
	assert.Len(t, paylink.Code, 16)

	mockRepo.AssertExpectations(t)
}

func TestPaylinkCreate_ReusableRejectsPinnedFields(t *testing.T) {
	mockRepo, uc := setupPaylinkTest(t)

	amount := decimal.NewFromInt(500)
	cases := []*params.CreatePaylinkRequest{
		{MerchantID: uuid.New(), Amount: &amount},
		{MerchantID: uuid.New(), Contact: "Ravi Kumar"},
		{MerchantID: uuid.New(), Email: "ravi@example.com"},
		{MerchantID: uuid.New(), Phone: "+919800000001"},
	}
	for _, req := range cases {
		paylink, custErr := uc.Create(context.Background(), req)

		assert.Nil(t, paylink)
		assert.NotNil(t, custErr)
		assert.Equal(t, 400, custErr.StatusCode)
	}

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaylinkCreate_UniqueCodes(t *testing.T) {
	mockRepo, uc := setupPaylinkTest(t)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Paylink")).Return(nil)

	first, custErr := uc.Create(context.Background(), &params.CreatePaylinkRequest{MerchantID: uuid.New()})
	assert.Nil(t, custErr)
	second, custErr := uc.Create(context.Background(), &params.CreatePaylinkRequest{MerchantID: uuid.New()})
	assert.Nil(t, custErr)

	assert.NotEqual(t, first.Code, second.Code)
}
