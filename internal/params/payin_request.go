package params

import (
	"github.com/google/uuid"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
)

// AssignPayinRequest hands an initiated payin to an agent and the collection
// account the payer should be directed to.
type AssignPayinRequest struct {
	AgentID       uuid.UUID  `json:"agent_id" validate:"required"`
	BankAccountID *uuid.UUID `json:"bank_account_id,omitempty"`
}

// ConfirmPayinRequest closes out an assigned payin. A successful confirmation
// carries the bank UTR as proof of payment.
type ConfirmPayinRequest struct {
	Status entity.PayinStatus `json:"status" validate:"required,oneof=success failed dropped"`
	UTR    string             `json:"utr,omitempty"`
}

func (r *ConfirmPayinRequest) CheckPayload() *response.CustomError {
	if r.Status == entity.PayinStatusSuccess && r.UTR == "" {
		return response.BadRequestError("confirming a payin requires a UTR reference")
	}
	return nil
}
