package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusDisabled AgentStatus = "disabled"
)

// Agent is an operator account that manually fulfills and confirms payin
// transactions.
type Agent struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string      `gorm:"type:varchar(120);not null" json:"name"`
	Email     string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone     string      `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Status    AgentStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (a *Agent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Agent) TableName() string {
	return "agents"
}
