package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/usecase"
)

func setupChargebackTest(t *testing.T) (*repository.MockChargebackRepository, usecase.ChargebackUsecase) {
	mockRepo := new(repository.MockChargebackRepository)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	uc := usecase.NewChargebackUsecase(mockRepo, logger)

	return mockRepo, uc
}

func openChargeback() *entity.Chargeback {
	return &entity.Chargeback{
		ID:         uuid.New(),
		MerchantID: uuid.New(),
		PayinID:    uuid.New(),
		Amount:     decimal.NewFromInt(1500),
		Status:     entity.ChargebackStatusOpen,
	}
}

func TestChargebackResolve_OpenToAccepted(t *testing.T) {
	mockRepo, uc := setupChargebackTest(t)

	cb := openChargeback()
	mockRepo.On("GetByID", mock.Anything, cb.ID).Return(cb, nil)
	mockRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*entity.Chargeback")).Return(nil)

	resolved, custErr := uc.Resolve(context.Background(), cb.ID, &params.ResolveChargebackRequest{
		Status: entity.ChargebackStatusAccepted,
	})

	assert.Nil(t, custErr)
	assert.Equal(t, entity.ChargebackStatusAccepted, resolved.Status)

	mockRepo.AssertExpectations(t)
}

func TestChargebackResolve_OpenToDisputedWithReason(t *testing.T) {
	mockRepo, uc := setupChargebackTest(t)

	cb := openChargeback()
	mockRepo.On("GetByID", mock.Anything, cb.ID).Return(cb, nil)
	mockRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*entity.Chargeback")).Return(nil)

	resolved, custErr := uc.Resolve(context.Background(), cb.ID, &params.ResolveChargebackRequest{
		Status: entity.ChargebackStatusDisputed,
		Reason: "settlement proof attached",
	})

	assert.Nil(t, custErr)
	assert.Equal(t, entity.ChargebackStatusDisputed, resolved.Status)
	assert.Equal(t, "settlement proof attached", resolved.Reason)

	mockRepo.AssertExpectations(t)
}

func TestChargebackResolve_AcceptedIsTerminal(t *testing.T) {
	mockRepo, uc := setupChargebackTest(t)

	cb := openChargeback()
	cb.Status = entity.ChargebackStatusAccepted
	mockRepo.On("GetByID", mock.Anything, cb.ID).Return(cb, nil)

	resolved, custErr := uc.Resolve(context.Background(), cb.ID, &params.ResolveChargebackRequest{
		Status: entity.ChargebackStatusDisputed,
	})

	assert.Nil(t, resolved)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestChargebackResolve_DisputedIsTerminal(t *testing.T) {
	mockRepo, uc := setupChargebackTest(t)

	cb := openChargeback()
	cb.Status = entity.ChargebackStatusDisputed
	mockRepo.On("GetByID", mock.Anything, cb.ID).Return(cb, nil)

	resolved, custErr := uc.Resolve(context.Background(), cb.ID, &params.ResolveChargebackRequest{
		Status: entity.ChargebackStatusAccepted,
	})

	assert.Nil(t, resolved)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestChargebackResolve_NotFound(t *testing.T) {
	mockRepo, uc := setupChargebackTest(t)

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	resolved, custErr := uc.Resolve(context.Background(), id, &params.ResolveChargebackRequest{
		Status: entity.ChargebackStatusAccepted,
	})

	assert.Nil(t, resolved)
	assert.NotNil(t, custErr)
	assert.Equal(t, 404, custErr.StatusCode)
}
