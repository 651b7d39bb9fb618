package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "pending"
	SettlementStatusApproved SettlementStatus = "approved"
	SettlementStatusRejected SettlementStatus = "rejected"
)

var settlementTransitions = map[SettlementStatus][]Action{
	SettlementStatusPending:  {ActionApprove, ActionReject},
	SettlementStatusApproved: {ActionReset},
	SettlementStatusRejected: {ActionReset},
}

func (s SettlementStatus) AllowedActions() []Action {
	return settlementTransitions[s]
}

func (s SettlementStatus) Allows(a Action) bool {
	for _, allowed := range settlementTransitions[s] {
		if allowed == a {
			return true
		}
	}
	return false
}

// SettlementMethod discriminates the payout rail of a settlement. Bank
// settlements carry bank beneficiary fields, crypto settlements carry a
// wallet address and network; the inactive branch stays empty.
type SettlementMethod string

const (
	SettlementMethodBank   SettlementMethod = "bank"
	SettlementMethodCrypto SettlementMethod = "crypto"
)

func (m SettlementMethod) Valid() bool {
	return m == SettlementMethodBank || m == SettlementMethodCrypto
}

type Settlement struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MerchantID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"merchant_id"`
	Amount       decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method       SettlementMethod `gorm:"type:varchar(10);not null" json:"method"`
	Status       SettlementStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RejectReason RejectReason     `gorm:"type:varchar(40)" json:"reject_reason,omitempty"`
	Reference    string           `gorm:"type:varchar(80)" json:"reference,omitempty"`

	AccountHolder string `gorm:"type:varchar(120)" json:"account_holder,omitempty"`
	AccountNumber string `gorm:"type:varchar(40)" json:"account_number,omitempty"`
	IFSC          string `gorm:"type:varchar(16)" json:"ifsc,omitempty"`
	BankName      string `gorm:"type:varchar(120)" json:"bank_name,omitempty"`

	WalletAddress string `gorm:"type:varchar(120)" json:"wallet_address,omitempty"`
	Network       string `gorm:"type:varchar(20)" json:"network,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_settlements_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Merchant Merchant `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
}

func (s *Settlement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (Settlement) TableName() string {
	return "settlements"
}
