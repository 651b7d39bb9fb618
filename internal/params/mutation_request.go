package params

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mutation methods carried in the body of POST /api/{entity}. The console
// sends one envelope shape for create ("post"), update and delete.
const (
	MutationCreate = "post"
	MutationUpdate = "update"
	MutationDelete = "delete"
)

// MutationEnvelope is the shared part of every mutation body. Key carries the
// ids a delete targets.
type MutationEnvelope struct {
	Method string      `json:"method" validate:"required,oneof=post update delete"`
	Key    []uuid.UUID `json:"key,omitempty"`
}

type MerchantMutationRequest struct {
	MutationEnvelope
	ID           *uuid.UUID       `json:"id,omitempty"`
	Code         string           `json:"code,omitempty" validate:"max=32"`
	Name         string           `json:"name,omitempty" validate:"max=120"`
	Email        string           `json:"email,omitempty" validate:"omitempty,email"`
	Status       string           `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
	PayinFeePct  *decimal.Decimal `json:"payin_fee_pct,omitempty"`
	PayoutFeePct *decimal.Decimal `json:"payout_fee_pct,omitempty"`
	WebhookURL   string           `json:"webhook_url,omitempty"`
	TestMode     *bool            `json:"test_mode,omitempty"`
}

type AgentMutationRequest struct {
	MutationEnvelope
	ID     *uuid.UUID `json:"id,omitempty"`
	Name   string     `json:"name,omitempty" validate:"max=120"`
	Email  string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string     `json:"phone,omitempty" validate:"max=20"`
	Status string     `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
}

type BankAccountMutationRequest struct {
	MutationEnvelope
	ID            *uuid.UUID       `json:"id,omitempty"`
	AgentID       *uuid.UUID       `json:"agent_id,omitempty"`
	AccountHolder string           `json:"account_holder,omitempty" validate:"max=120"`
	AccountNumber string           `json:"account_number,omitempty" validate:"max=40"`
	IFSC          string           `json:"ifsc,omitempty" validate:"max=16"`
	BankName      string           `json:"bank_name,omitempty" validate:"max=120"`
	UPIID         string           `json:"upi_id,omitempty" validate:"max=80"`
	MinAmount     *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
	Status        string           `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
}

type AdminUserMutationRequest struct {
	MutationEnvelope
	ID          *uuid.UUID `json:"id,omitempty"`
	Username    string     `json:"username,omitempty" validate:"max=120"`
	Password    string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Role        string     `json:"role,omitempty" validate:"omitempty,oneof=admin operator agent"`
	Permissions []string   `json:"permissions,omitempty"`
	MerchantID  *uuid.UUID `json:"merchant_id,omitempty"`
}
