package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaylinkStatus string

const (
	PaylinkStatusActive  PaylinkStatus = "active"
	PaylinkStatusUsed    PaylinkStatus = "used"
	PaylinkStatusExpired PaylinkStatus = "expired"
)

// Paylink is a shareable deposit link. A one-time link is pinned to a single
// contact and amount and expires after first use; a reusable link lets the
// payer choose the amount.
type Paylink struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MerchantID uuid.UUID        `gorm:"type:uuid;not null;index" json:"merchant_id"`
	Code       string           `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	OneTime    bool             `gorm:"not null;default:false" json:"one_time"`
	Amount     *decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount,omitempty"`
	Contact    string           `gorm:"type:varchar(120)" json:"contact,omitempty"`
	Email      string           `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone      string           `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Status     PaylinkStatus    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (p *Paylink) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Paylink) TableName() string {
	return "paylinks"
}
