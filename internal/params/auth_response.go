package params

import (
	"time"

	"github.com/google/uuid"

	"go-payment-admin/internal/access"
)

type AuthResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Role     string    `json:"role"`
	} `json:"user"`
}

// CurrentUserResponse is what GET /api/currentUser returns: the operator's
// identity plus the capability flags the console gates buttons on.
type CurrentUserResponse struct {
	ID           uuid.UUID           `json:"id"`
	Username     string              `json:"username"`
	Role         string              `json:"role"`
	Permissions  []string            `json:"permissions"`
	Capabilities access.Capabilities `json:"capabilities"`
	LastLoginAt  *time.Time          `json:"last_login_at,omitempty"`
}
