package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayoutStatus string

const (
	PayoutStatusInitiated PayoutStatus = "initiated"
	PayoutStatusSuccess   PayoutStatus = "success"
	PayoutStatusFailed    PayoutStatus = "failed"
	PayoutStatusReversed  PayoutStatus = "reversed"
)

// payoutTransitions is the single source of truth for which authorize actions
// a payout in a given status accepts. The row-action rendering in the console
// and the server-side checks both derive from it.
var payoutTransitions = map[PayoutStatus][]Action{
	PayoutStatusInitiated: {ActionApprove, ActionReject},
	PayoutStatusSuccess:   {ActionReset},
	PayoutStatusFailed:    {ActionReset},
	PayoutStatusReversed:  {ActionReset},
}

// AllowedActions returns the authorize actions valid for the given status.
// Unknown statuses get no actions.
func (s PayoutStatus) AllowedActions() []Action {
	return payoutTransitions[s]
}

func (s PayoutStatus) Allows(a Action) bool {
	for _, allowed := range payoutTransitions[s] {
		if allowed == a {
			return true
		}
	}
	return false
}

type Payout struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MerchantID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"merchant_id"`
	MerchantOrderID string             `gorm:"type:varchar(64);not null;uniqueIndex:idx_payouts_merchant_order,composite:merchant_id" json:"merchant_order_id"`
	Amount          decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status          PayoutStatus       `gorm:"type:varchar(20);not null;default:'initiated';index" json:"status"`
	Method          DisbursementMethod `gorm:"type:varchar(20)" json:"method,omitempty"`
	UTR             string             `gorm:"type:varchar(64)" json:"utr,omitempty"`
	RejectReason    RejectReason       `gorm:"type:varchar(40)" json:"reject_reason,omitempty"`
	AccountHolder   string             `gorm:"type:varchar(120);not null" json:"account_holder"`
	AccountNumber   string             `gorm:"type:varchar(40);not null" json:"account_number"`
	IFSC            string             `gorm:"type:varchar(16);not null" json:"ifsc"`
	BankName        string             `gorm:"type:varchar(120)" json:"bank_name"`
	PlayerID        string             `gorm:"type:varchar(64);index" json:"player_id"`
	CreatedAt       time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_payouts_created_at,sort:desc" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Merchant Merchant `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
}

func (p *Payout) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Payout) TableName() string {
	return "payouts"
}
