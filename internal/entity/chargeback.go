package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ChargebackStatus string

const (
	ChargebackStatusOpen     ChargebackStatus = "open"
	ChargebackStatusAccepted ChargebackStatus = "accepted"
	ChargebackStatusDisputed ChargebackStatus = "disputed"
)

var chargebackTransitions = map[ChargebackStatus][]ChargebackStatus{
	ChargebackStatusOpen: {ChargebackStatusAccepted, ChargebackStatusDisputed},
}

func (s ChargebackStatus) CanTransitionTo(next ChargebackStatus) bool {
	for _, allowed := range chargebackTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Chargeback struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MerchantID uuid.UUID        `gorm:"type:uuid;not null;index" json:"merchant_id"`
	PayinID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"payin_id"`
	Amount     decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status     ChargebackStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	Reason     string           `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Merchant Merchant `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
	Payin    Payin    `gorm:"foreignKey:PayinID" json:"payin,omitempty"`
}

func (c *Chargeback) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Chargeback) TableName() string {
	return "chargebacks"
}
