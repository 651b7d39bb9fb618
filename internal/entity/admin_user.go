package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleAgent    Role = "agent"
)

// AdminUser is a console operator. Permissions are flat dash/dot delimited
// tokens like "payin-list" or "bank.acct-list"; the capability projection
// turns them into the canXxx flags the console reads.
type AdminUser struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username    string         `gorm:"type:varchar(120);not null;uniqueIndex" json:"username"`
	Password    string         `gorm:"type:varchar(255);not null" json:"-"`
	Role        Role           `gorm:"type:varchar(20);not null;default:'operator'" json:"role"`
	Permissions pq.StringArray `gorm:"type:text[]" json:"permissions"`
	MerchantID  *uuid.UUID     `gorm:"type:uuid" json:"merchant_id,omitempty"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (AdminUser) TableName() string {
	return "admin_users"
}
