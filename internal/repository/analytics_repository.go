package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/params"
)

type AnalyticsRepository interface {
	PayinBuckets(ctx context.Context, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error)
	PayoutBuckets(ctx context.Context, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error)
}

type AnalyticsRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewAnalyticsRepository(db *gorm.DB, logger *logrus.Logger) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

type bucketRow struct {
	Bucket string
	Count  int64
	Amount decimal.Decimal
}

// buckets runs the shared grouped aggregate. Only successful transactions
// count towards the report, matching what merchants reconcile against.
func (r *AnalyticsRepositoryImpl) buckets(ctx context.Context, table string, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error) {
	query := fmt.Sprintf(`
		SELECT to_char(date_trunc(?, t.created_at), 'YYYY-MM-DD HH24:MI') AS bucket,
		       COUNT(*) AS count,
		       COALESCE(SUM(t.amount), 0) AS amount
		FROM %s t
		JOIN merchants m ON m.id = t.merchant_id
		WHERE m.code IN ?
		  AND t.status = 'success'
		  AND t.created_at >= ?
		  AND t.created_at < ?
		GROUP BY 1
		ORDER BY 1`, table)

	var rows []bucketRow
	err := r.db.WithContext(ctx).Raw(query, granularity, codes, from, to).Scan(&rows).Error
	if err != nil {
		r.logger.WithError(err).WithField("table", table).Error("Failed to aggregate analytics buckets")
		return nil, fmt.Errorf("failed to aggregate %s: %w", table, err)
	}

	stats := make([]params.BucketStat, len(rows))
	for i, row := range rows {
		stats[i] = params.BucketStat{Bucket: row.Bucket, Count: row.Count, Amount: row.Amount}
	}
	return stats, nil
}

func (r *AnalyticsRepositoryImpl) PayinBuckets(ctx context.Context, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error) {
	return r.buckets(ctx, "payins", codes, from, to, granularity)
}

func (r *AnalyticsRepositoryImpl) PayoutBuckets(ctx context.Context, codes []string, from, to time.Time, granularity string) ([]params.BucketStat, error) {
	return r.buckets(ctx, "payouts", codes, from, to, granularity)
}
