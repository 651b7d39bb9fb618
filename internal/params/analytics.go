package params

import "github.com/shopspring/decimal"

type AnalyticsRequest struct {
	MerchantCodes []string `json:"merchant_codes" validate:"required,min=1"`
	FromDate      string   `json:"from_date" validate:"required"`
	ToDate        string   `json:"to_date" validate:"required"`
}

// BucketStat is one bar of the report chart: a time-bucket label with the
// transaction count and amount sum that fell into it.
type BucketStat struct {
	Bucket string          `json:"bucket"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// AnalyticsResponse carries headline totals plus the bucketed series for the
// bar chart. Granularity reports which window size the range resolved to
// (hour, day or week).
type AnalyticsResponse struct {
	Granularity   string          `json:"granularity"`
	PayinCount    int64           `json:"payin_count"`
	PayinAmount   decimal.Decimal `json:"payin_amount"`
	PayoutCount   int64           `json:"payout_count"`
	PayoutAmount  decimal.Decimal `json:"payout_amount"`
	PayinBuckets  []BucketStat    `json:"payin_buckets"`
	PayoutBuckets []BucketStat    `json:"payout_buckets"`
}
