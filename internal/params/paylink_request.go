package params

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-payment-admin/internal/commons/response"
)

// CreatePaylinkRequest branches on OneTime: a one-time link must pin a
// contact and amount, a reusable link must not carry either.
type CreatePaylinkRequest struct {
	MerchantID uuid.UUID        `json:"merchant_id" validate:"required"`
	OneTime    bool             `json:"one_time"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Contact    string           `json:"contact,omitempty" validate:"max=120"`
	Email      string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string           `json:"phone,omitempty" validate:"max=20"`
}

func (r *CreatePaylinkRequest) CheckPayload() *response.CustomError {
	if r.OneTime {
		if r.Amount == nil || !r.Amount.IsPositive() {
			return response.BadRequestError("one-time paylink requires a positive amount")
		}
		if r.Contact == "" {
			return response.BadRequestError("one-time paylink requires a contact")
		}
		return nil
	}
	if r.Amount != nil || r.Contact != "" || r.Email != "" || r.Phone != "" {
		return response.BadRequestError("reusable paylink must not carry contact or amount fields")
	}
	return nil
}
