package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/commons/export"
	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/commons/timeutil"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/repository"
)

type AnalyticsUsecase interface {
	Report(ctx context.Context, req *params.AnalyticsRequest) (*params.AnalyticsResponse, *response.CustomError)
	Download(ctx context.Context, req *params.AnalyticsRequest, w io.Writer) *response.CustomError
}

type AnalyticsUsecaseImpl struct {
	repo   repository.AnalyticsRepository
	logger *logrus.Logger
}

func NewAnalyticsUsecase(repo repository.AnalyticsRepository, logger *logrus.Logger) AnalyticsUsecase {
	return &AnalyticsUsecaseImpl{
		repo:   repo,
		logger: logger,
	}
}

// granularity picks the bucket size from the range length: up to two days
// reports hourly, up to a month daily, anything longer weekly.
func granularity(from, to time.Time) string {
	span := to.Sub(from)
	switch {
	case span <= 48*time.Hour:
		return "hour"
	case span <= 31*24*time.Hour:
		return "day"
	default:
		return "week"
	}
}

func (u *AnalyticsUsecaseImpl) resolveRange(req *params.AnalyticsRequest) (time.Time, time.Time, *response.CustomError) {
	from, err := timeutil.ParseDate(req.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, response.BadRequestError("from_date must be YYYY-MM-DD")
	}
	to, err := timeutil.ParseDate(req.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, response.BadRequestError("to_date must be YYYY-MM-DD")
	}
	to = to.AddDate(0, 0, 1)
	if !to.After(from) {
		return time.Time{}, time.Time{}, response.BadRequestError("to_date must not be before from_date")
	}
	return from, to, nil
}

func (u *AnalyticsUsecaseImpl) Report(ctx context.Context, req *params.AnalyticsRequest) (*params.AnalyticsResponse, *response.CustomError) {
	from, to, custErr := u.resolveRange(req)
	if custErr != nil {
		return nil, custErr
	}
	gran := granularity(from, to)

	payinBuckets, err := u.repo.PayinBuckets(ctx, req.MerchantCodes, from, to, gran)
	if err != nil {
		u.logger.WithError(err).Error("Failed to aggregate payins")
		return nil, response.RepositoryError("failed to aggregate payins")
	}
	payoutBuckets, err := u.repo.PayoutBuckets(ctx, req.MerchantCodes, from, to, gran)
	if err != nil {
		u.logger.WithError(err).Error("Failed to aggregate payouts")
		return nil, response.RepositoryError("failed to aggregate payouts")
	}

	resp := &params.AnalyticsResponse{
		Granularity:   gran,
		PayinBuckets:  payinBuckets,
		PayoutBuckets: payoutBuckets,
		PayinAmount:   decimal.Zero,
		PayoutAmount:  decimal.Zero,
	}
	for _, b := range payinBuckets {
		resp.PayinCount += b.Count
		resp.PayinAmount = resp.PayinAmount.Add(b.Amount)
	}
	for _, b := range payoutBuckets {
		resp.PayoutCount += b.Count
		resp.PayoutAmount = resp.PayoutAmount.Add(b.Amount)
	}
	return resp, nil
}

func (u *AnalyticsUsecaseImpl) Download(ctx context.Context, req *params.AnalyticsRequest, w io.Writer) *response.CustomError {
	report, custErr := u.Report(ctx, req)
	if custErr != nil {
		return custErr
	}

	header := []string{"series", "bucket", "count", "amount"}
	var rows [][]string
	for _, b := range report.PayinBuckets {
		rows = append(rows, []string{"payin", b.Bucket, decimal.NewFromInt(b.Count).String(), b.Amount.StringFixed(2)})
	}
	for _, b := range report.PayoutBuckets {
		rows = append(rows, []string{"payout", b.Bucket, decimal.NewFromInt(b.Count).String(), b.Amount.StringFixed(2)})
	}
	if err := export.WriteCSV(w, header, rows); err != nil {
		u.logger.WithError(err).Error("Failed to write analytics csv")
		return response.GeneralError("failed to write csv")
	}
	return nil
}
