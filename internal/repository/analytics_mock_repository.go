package repository

import (
	"context"
	"time"

	"go-payment-admin/internal/params"

	"github.com/stretchr/testify/mock"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) PayinBuckets(ctx context.Context, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error) {
	args := m.Called(ctx, codes, from, to, granularity)
	if args.Get(0) != nil {
		return args.Get(0).([]params.BucketStat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) PayoutBuckets(ctx context.Context, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error) {
	args := m.Called(ctx, codes, from, to, granularity)
	if args.Get(0) != nil {
		return args.Get(0).([]params.BucketStat), args.Error(1)
	}
	return nil, args.Error(1)
}
