package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/usecase"
)

func setupMerchantTest(t *testing.T) (*repository.MockMerchantRepository, usecase.MerchantUsecase) {
	mockRepo := new(repository.MockMerchantRepository)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	uc := usecase.NewMerchantUsecase(mockRepo, logger, nil)

	return mockRepo, uc
}

func TestMerchantMutate_Create(t *testing.T) {
	mockRepo, uc := setupMerchantTest(t)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Merchant")).Return(nil)

	req := &params.MerchantMutationRequest{
		MutationEnvelope: params.MutationEnvelope{Method: params.MutationCreate},
		Code:             "ACME",
		Name:             "Acme Gaming",
		Email:            "ops@acme.example",
	}
	merchant, custErr := uc.Mutate(context.Background(), req)

	assert.Nil(t, custErr)
	assert.Equal(t, "ACME", merchant.Code)
	assert.Equal(t, entity.MerchantStatusActive, merchant.Status)

	mockRepo.AssertExpectations(t)
}

func TestMerchantMutate_CreateRequiresIdentity(t *testing.T) {
	mockRepo, uc := setupMerchantTest(t)

	req := &params.MerchantMutationRequest{
		MutationEnvelope: params.MutationEnvelope{Method: params.MutationCreate},
		Name:             "No Code",
	}
	merchant, custErr := uc.Mutate(context.Background(), req)

	assert.Nil(t, merchant)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMerchantMutate_Update(t *testing.T) {
	mockRepo, uc := setupMerchantTest(t)

	merchantID := uuid.New()
	existing := &entity.Merchant{
		ID:     merchantID,
		Code:   "ACME",
		Name:   "Acme Gaming",
		Email:  "ops@acme.example",
		Status: entity.MerchantStatusActive,
	}
	mockRepo.On("GetByID", mock.Anything, merchantID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Merchant")).Return(nil)

	req := &params.MerchantMutationRequest{
		MutationEnvelope: params.MutationEnvelope{Method: params.MutationUpdate},
		ID:               &merchantID,
		Status:           "disabled",
	}
	merchant, custErr := uc.Mutate(context.Background(), req)

	assert.Nil(t, custErr)
	assert.Equal(t, entity.MerchantStatusDisabled, merchant.Status)
	assert.Equal(t, "Acme Gaming", merchant.Name)
}

func TestMerchantMutate_Delete(t *testing.T) {
	mockRepo, uc := setupMerchantTest(t)

	keys := []uuid.UUID{uuid.New(), uuid.New()}
	mockRepo.On("Delete", mock.Anything, keys).Return(nil)

	req := &params.MerchantMutationRequest{
		MutationEnvelope: params.MutationEnvelope{Method: params.MutationDelete, Key: keys},
	}
	merchant, custErr := uc.Mutate(context.Background(), req)

	assert.Nil(t, custErr)
	assert.Nil(t, merchant)

	mockRepo.AssertExpectations(t)
}

func TestMerchantMutate_DeleteRequiresKeys(t *testing.T) {
	mockRepo, uc := setupMerchantTest(t)

	req := &params.MerchantMutationRequest{
		MutationEnvelope: params.MutationEnvelope{Method: params.MutationDelete},
	}
	_, custErr := uc.Mutate(context.Background(), req)

	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMerchantMutate_UnknownMethod(t *testing.T) {
	_, uc := setupMerchantTest(t)

	req := &params.MerchantMutationRequest{
		MutationEnvelope: params.MutationEnvelope{Method: "patch"},
	}
	_, custErr := uc.Mutate(context.Background(), req)

	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)
}

func TestMerchantLookup(t *testing.T) {
	mockRepo, uc := setupMerchantTest(t)

	options := []params.LookupOption{{Label: "Acme Gaming", Value: "ACME"}}
	mockRepo.On("Lookup", mock.Anything, "acm", 10).Return(options, nil)

	result, custErr := uc.Lookup(context.Background(), &params.LookupRequest{Name: "acm"})

	assert.Nil(t, custErr)
	assert.Equal(t, "ACME", result[0].Value)
}
