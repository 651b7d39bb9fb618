package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MerchantStatus string

const (
	MerchantStatusActive   MerchantStatus = "active"
	MerchantStatusDisabled MerchantStatus = "disabled"
)

type Merchant struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code          string          `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	Name          string          `gorm:"type:varchar(120);not null" json:"name"`
	Email         string          `gorm:"type:varchar(255);not null" json:"email"`
	Status        MerchantStatus  `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	PayinFeePct   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"payin_fee_pct"`
	PayoutFeePct  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"payout_fee_pct"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	WebhookURL    string          `gorm:"type:text" json:"webhook_url,omitempty"`
	TestMode      bool            `gorm:"not null;default:false" json:"test_mode"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Merchant) TableName() string {
	return "merchants"
}
