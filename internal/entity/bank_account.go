package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankAccountStatus string

const (
	BankAccountStatusActive   BankAccountStatus = "active"
	BankAccountStatusDisabled BankAccountStatus = "disabled"
)

// BankAccount is a collection account that inbound deposits are routed to.
// MinAmount/MaxAmount bound the deposits an account may receive.
type BankAccount struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AgentID       *uuid.UUID        `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	AccountHolder string            `gorm:"type:varchar(120);not null" json:"account_holder"`
	AccountNumber string            `gorm:"type:varchar(40);not null;uniqueIndex" json:"account_number"`
	IFSC          string            `gorm:"type:varchar(16);not null" json:"ifsc"`
	BankName      string            `gorm:"type:varchar(120);not null" json:"bank_name"`
	UPIID         string            `gorm:"type:varchar(80)" json:"upi_id,omitempty"`
	MinAmount     decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0" json:"min_amount"`
	MaxAmount     decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0" json:"max_amount"`
	Status        BankAccountStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (BankAccount) TableName() string {
	return "bank_accounts"
}
