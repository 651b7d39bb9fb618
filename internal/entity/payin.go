package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayinStatus string

const (
	PayinStatusInitiated PayinStatus = "initiated"
	PayinStatusAssigned  PayinStatus = "assigned"
	PayinStatusSuccess   PayinStatus = "success"
	PayinStatusFailed    PayinStatus = "failed"
	PayinStatusDropped   PayinStatus = "dropped"
)

// payinTransitions describes the one-way lifecycle of a deposit. An agent
// picks up an initiated payin (assign) and then confirms or fails it;
// unattended payins get dropped.
var payinTransitions = map[PayinStatus][]PayinStatus{
	PayinStatusInitiated: {PayinStatusAssigned, PayinStatusDropped},
	PayinStatusAssigned:  {PayinStatusSuccess, PayinStatusFailed, PayinStatusDropped},
}

func (s PayinStatus) CanTransitionTo(next PayinStatus) bool {
	for _, allowed := range payinTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Payin struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MerchantID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"merchant_id"`
	MerchantOrderID string          `gorm:"type:varchar(64);not null" json:"merchant_order_id"`
	AgentID         *uuid.UUID      `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	BankAccountID   *uuid.UUID      `gorm:"type:uuid" json:"bank_account_id,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status          PayinStatus     `gorm:"type:varchar(20);not null;default:'initiated';index" json:"status"`
	UTR             string          `gorm:"type:varchar(64);index" json:"utr,omitempty"`
	PlayerID        string          `gorm:"type:varchar(64);index" json:"player_id"`
	ProofURL        string          `gorm:"type:text" json:"proof_url,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_payins_created_at,sort:desc" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Merchant Merchant `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
	Agent    *Agent   `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}

func (p *Payin) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Payin) TableName() string {
	return "payins"
}
