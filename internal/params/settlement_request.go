package params

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
)

type SettlementBankDetails struct {
	AccountHolder string `json:"account_holder" validate:"required,max=120"`
	AccountNumber string `json:"account_number" validate:"required,max=40"`
	IFSC          string `json:"ifsc" validate:"required,max=16"`
	BankName      string `json:"bank_name" validate:"max=120"`
}

type SettlementCryptoDetails struct {
	WalletAddress string `json:"wallet_address" validate:"required,max=120"`
	Network       string `json:"network" validate:"required,max=20"`
}

// CreateSettlementRequest branches on Method: exactly one of Bank or Crypto
// must be present, matching the discriminant. Fields of the inactive branch
// must be omitted entirely, not sent as null.
type CreateSettlementRequest struct {
	MerchantID uuid.UUID                `json:"merchant_id" validate:"required"`
	Amount     decimal.Decimal          `json:"amount" validate:"required"`
	Method     entity.SettlementMethod  `json:"method" validate:"required,oneof=bank crypto"`
	Bank       *SettlementBankDetails   `json:"bank,omitempty"`
	Crypto     *SettlementCryptoDetails `json:"crypto,omitempty"`
}

// CheckPayload rejects payloads whose sub-object does not match the method
// discriminant.
func (r *CreateSettlementRequest) CheckPayload() *response.CustomError {
	if !r.Amount.IsPositive() {
		return response.BadRequestError("amount must be positive")
	}
	switch r.Method {
	case entity.SettlementMethodBank:
		if r.Bank == nil {
			return response.BadRequestError("bank settlement requires bank details")
		}
		if r.Crypto != nil {
			return response.BadRequestError("bank settlement must not carry crypto details")
		}
	case entity.SettlementMethodCrypto:
		if r.Crypto == nil {
			return response.BadRequestError("crypto settlement requires a wallet address")
		}
		if r.Bank != nil {
			return response.BadRequestError("crypto settlement must not carry bank details")
		}
	}
	return nil
}

type AuthorizeSettlementRequest struct {
	ID        uuid.UUID     `json:"id" validate:"required"`
	Action    entity.Action `json:"action" validate:"required,oneof=approve reject reset"`
	Reference string        `json:"reference,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

func (r *AuthorizeSettlementRequest) CheckPayload() *response.CustomError {
	switch r.Action {
	case entity.ActionApprove:
		if r.Reference == "" {
			return response.BadRequestError("approve requires a transfer reference")
		}
	case entity.ActionReject:
		if !entity.RejectReason(r.Reason).Valid() {
			return response.BadRequestError("reject requires a valid reason")
		}
	case entity.ActionReset:
		if r.Reference != "" || r.Reason != "" {
			return response.BadRequestError("reset takes no additional fields")
		}
	}
	return nil
}
