package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-payment-admin/internal/entity"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/usecase"
)

func setupPayinTest(t *testing.T) (*repository.MockPayinRepository, *miniredis.Miniredis, usecase.PayinUsecase) {
	mockRepo := new(repository.MockPayinRepository)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	uc := usecase.NewPayinUsecase(mockRepo, logger, rdb)

	return mockRepo, mr, uc
}

func TestPayinAssign_FromInitiated(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	payinID := uuid.New()
	agentID := uuid.New()
	payin := &entity.Payin{
		ID:     payinID,
		Amount: decimal.NewFromInt(300),
		Status: entity.PayinStatusInitiated,
	}
	mockRepo.On("GetByID", mock.Anything, payinID).Return(payin, nil)
	mockRepo.On("UpdateAssignment", mock.Anything, mock.AnythingOfType("*entity.Payin")).Return(nil)

	updated, custErr := uc.Assign(context.Background(), payinID, &params.AssignPayinRequest{AgentID: agentID})

	assert.Nil(t, custErr)
	assert.Equal(t, entity.PayinStatusAssigned, updated.Status)
	assert.Equal(t, agentID, *updated.AgentID)
}

func TestPayinAssign_RejectedWhenAlreadyClosed(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	payinID := uuid.New()
	payin := &entity.Payin{ID: payinID, Status: entity.PayinStatusSuccess}
	mockRepo.On("GetByID", mock.Anything, payinID).Return(payin, nil)

	updated, custErr := uc.Assign(context.Background(), payinID, &params.AssignPayinRequest{AgentID: uuid.New()})

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "UpdateAssignment", mock.Anything, mock.Anything)
}

func TestPayinConfirm_SuccessNeedsUTR(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	req := &params.ConfirmPayinRequest{Status: entity.PayinStatusSuccess}
	updated, custErr := uc.Confirm(context.Background(), uuid.New(), req)

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPayinConfirm_AssignedToSuccess(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	payinID := uuid.New()
	payin := &entity.Payin{ID: payinID, Status: entity.PayinStatusAssigned}
	mockRepo.On("GetByID", mock.Anything, payinID).Return(payin, nil)
	mockRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*entity.Payin")).Return(nil)

	req := &params.ConfirmPayinRequest{Status: entity.PayinStatusSuccess, UTR: "UTR0001"}
	updated, custErr := uc.Confirm(context.Background(), payinID, req)

	assert.Nil(t, custErr)
	assert.Equal(t, entity.PayinStatusSuccess, updated.Status)
	assert.Equal(t, "UTR0001", updated.UTR)
}

func TestPayinConfirm_InitiatedCannotSkipAssignment(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	payinID := uuid.New()
	payin := &entity.Payin{ID: payinID, Status: entity.PayinStatusInitiated}
	mockRepo.On("GetByID", mock.Anything, payinID).Return(payin, nil)

	req := &params.ConfirmPayinRequest{Status: entity.PayinStatusSuccess, UTR: "UTR0001"}
	updated, custErr := uc.Confirm(context.Background(), payinID, req)

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)

	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestPayinLookupPlayers_DefaultLimit(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	options := []params.LookupOption{{Label: "player-7", Value: "player-7"}}
	mockRepo.On("LookupPlayers", mock.Anything, "play", 10).Return(options, nil)

	result, custErr := uc.LookupPlayers(context.Background(), &params.LookupRequest{Name: "play"})

	assert.Nil(t, custErr)
	assert.Len(t, result, 1)

	mockRepo.AssertExpectations(t)
}

func TestPayinExport_WritesCSV(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	payins := []*entity.Payin{
		{
			ID:              uuid.New(),
			MerchantOrderID: "ORD-1",
			Amount:          decimal.NewFromFloat(499.50),
			Status:          entity.PayinStatusSuccess,
			UTR:             "UTR42",
			PlayerID:        "p42",
			CreatedAt:       created,
		},
	}
	mockRepo.On("ListForExport", mock.Anything, mock.Anything, mock.Anything, 10000).Return(payins, nil)

	var buf bytes.Buffer
	custErr := uc.Export(context.Background(), map[string]interface{}{"status": "success"}, &buf)

	assert.Nil(t, custErr)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "merchant_order_id")
	assert.Contains(t, lines[1], "ORD-1")
	assert.Contains(t, lines[1], "499.50")
	// timestamps render in IST
	assert.Contains(t, lines[1], "01-06-2025 03:30:00 PM")
}

func TestPayinExport_InvalidFilter(t *testing.T) {
	mockRepo, _, uc := setupPayinTest(t)

	var buf bytes.Buffer
	custErr := uc.Export(context.Background(), map[string]interface{}{"uuid": "nope"}, &buf)

	assert.NotNil(t, custErr)
	assert.Zero(t, buf.Len())

	mockRepo.AssertNotCalled(t, "ListForExport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
