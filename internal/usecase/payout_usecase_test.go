package usecase_test

import (
	"context"
	"errors"
	"testing"

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

func setupPayoutTest(t *testing.T) (*repository.MockPayoutRepository, *miniredis.Miniredis, usecase.PayoutUsecase) {
	mockRepo := new(repository.MockPayoutRepository)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	uc := usecase.NewPayoutUsecase(mockRepo, logger, rdb)

	return mockRepo, mr, uc
}

func TestPayoutList_Success(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payouts := []*entity.Payout{
		{ID: uuid.New(), Amount: decimal.NewFromInt(500), Status: entity.PayoutStatusInitiated},
	}
	mockRepo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(payouts, nil)
	mockRepo.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

	page := &params.PageRequest{Current: 1, PageSize: 20}
	resp, custErr := uc.List(context.Background(), page)

	assert.Nil(t, custErr)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)

	mockRepo.AssertExpectations(t)
}

func TestPayoutList_InvalidFilterShortCircuits(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	page := &params.PageRequest{
		Current:  1,
		PageSize: 20,
		Filters:  map[string]interface{}{"uuid": "not-a-uuid"},
	}
	resp, custErr := uc.List(context.Background(), page)

	assert.Nil(t, resp)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayoutList_UnknownFilterRejected(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	page := &params.PageRequest{
		Current:  1,
		PageSize: 20,
		Filters:  map[string]interface{}{"secret_column": "x"},
	}
	resp, custErr := uc.List(context.Background(), page)

	assert.Nil(t, resp)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayoutList_SecondCallServedFromCache(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payouts := []*entity.Payout{
		{ID: uuid.New(), Amount: decimal.NewFromInt(100), Status: entity.PayoutStatusInitiated},
	}
	mockRepo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(payouts, nil).Once()
	mockRepo.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()

	page := &params.PageRequest{Current: 1, PageSize: 20}
	first, custErr := uc.List(context.Background(), page)
	assert.Nil(t, custErr)

	again := &params.PageRequest{Current: 1, PageSize: 20}
	second, custErr := uc.List(context.Background(), again)
	assert.Nil(t, custErr)
	assert.Equal(t, first.Total, second.Total)

	mockRepo.AssertExpectations(t)
}

func TestPayoutAuthorize_ApproveInitiated(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payoutID := uuid.New()
	payout := &entity.Payout{
		ID:     payoutID,
		Amount: decimal.NewFromInt(750),
		Status: entity.PayoutStatusInitiated,
	}
	mockRepo.On("GetByID", mock.Anything, payoutID).Return(payout, nil)
	mockRepo.On("UpdateAuthorization", mock.Anything, mock.AnythingOfType("*entity.Payout")).Return(nil)

	req := &params.AuthorizePayoutRequest{
		ID:     payoutID,
		Action: entity.ActionApprove,
		Method: "gateway",
	}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, custErr)
	assert.Equal(t, entity.PayoutStatusSuccess, updated.Status)
	assert.Equal(t, entity.DisbursementGateway, updated.Method)

	mockRepo.AssertExpectations(t)
}

func TestPayoutAuthorize_ManualApproveNeedsUTR(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	req := &params.AuthorizePayoutRequest{
		ID:     uuid.New(),
		Action: entity.ActionApprove,
		Method: "manual",
	}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPayoutAuthorize_RejectNeedsKnownReason(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	req := &params.AuthorizePayoutRequest{
		ID:     uuid.New(),
		Action: entity.ActionReject,
		Reason: "because",
	}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPayoutAuthorize_RejectSetsReason(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payoutID := uuid.New()
	payout := &entity.Payout{ID: payoutID, Status: entity.PayoutStatusInitiated}
	mockRepo.On("GetByID", mock.Anything, payoutID).Return(payout, nil)
	mockRepo.On("UpdateAuthorization", mock.Anything, mock.AnythingOfType("*entity.Payout")).Return(nil)

	req := &params.AuthorizePayoutRequest{
		ID:     payoutID,
		Action: entity.ActionReject,
		Reason: "insufficient_funds",
	}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, custErr)
	assert.Equal(t, entity.PayoutStatusFailed, updated.Status)
	assert.Equal(t, entity.RejectReason("insufficient_funds"), updated.RejectReason)
}

func TestPayoutAuthorize_ResetOnlyFromTerminalStatus(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payoutID := uuid.New()
	payout := &entity.Payout{ID: payoutID, Status: entity.PayoutStatusInitiated}
	mockRepo.On("GetByID", mock.Anything, payoutID).Return(payout, nil)

	req := &params.AuthorizePayoutRequest{ID: payoutID, Action: entity.ActionReset}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)
	assert.Equal(t, 400, custErr.StatusCode)

	mockRepo.AssertNotCalled(t, "UpdateAuthorization", mock.Anything, mock.Anything)
}

func TestPayoutAuthorize_ResetClearsDisbursementFields(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payoutID := uuid.New()
	payout := &entity.Payout{
		ID:     payoutID,
		Status: entity.PayoutStatusSuccess,
		Method: entity.DisbursementManual,
		UTR:    "UTR123456",
	}
	mockRepo.On("GetByID", mock.Anything, payoutID).Return(payout, nil)
	mockRepo.On("UpdateAuthorization", mock.Anything, mock.AnythingOfType("*entity.Payout")).Return(nil)

	req := &params.AuthorizePayoutRequest{ID: payoutID, Action: entity.ActionReset}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, custErr)
	assert.Equal(t, entity.PayoutStatusInitiated, updated.Status)
	assert.Empty(t, updated.Method)
	assert.Empty(t, updated.UTR)
}

func TestPayoutAuthorize_InvalidatesListCache(t *testing.T) {
	mockRepo, mr, uc := setupPayoutTest(t)

	mr.Set("list:payouts:deadbeef01234567", `{"total":1}`)
	mr.Set("list:payins:deadbeef01234567", `{"total":2}`)

	payoutID := uuid.New()
	payout := &entity.Payout{ID: payoutID, Status: entity.PayoutStatusInitiated}
	mockRepo.On("GetByID", mock.Anything, payoutID).Return(payout, nil)
	mockRepo.On("UpdateAuthorization", mock.Anything, mock.AnythingOfType("*entity.Payout")).Return(nil)

	req := &params.AuthorizePayoutRequest{
		ID:     payoutID,
		Action: entity.ActionApprove,
		Method: "gateway",
	}
	_, custErr := uc.Authorize(context.Background(), req)
	assert.Nil(t, custErr)

	assert.False(t, mr.Exists("list:payouts:deadbeef01234567"))
	assert.True(t, mr.Exists("list:payins:deadbeef01234567"))
}

func TestPayoutAuthorize_RepositoryFailure(t *testing.T) {
	mockRepo, _, uc := setupPayoutTest(t)

	payoutID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, payoutID).Return(nil, errors.New("db error"))

	req := &params.AuthorizePayoutRequest{
		ID:     payoutID,
		Action: entity.ActionApprove,
		Method: "gateway",
	}
	updated, custErr := uc.Authorize(context.Background(), req)

	assert.Nil(t, updated)
	assert.NotNil(t, custErr)
	assert.Equal(t, 500, custErr.StatusCode)
}
