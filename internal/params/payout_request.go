package params

import (
	"github.com/google/uuid"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/entity"
)

// AuthorizePayoutRequest is one approve/reject/reset round trip. Approve
// carries a disbursement method and, for manual, a UTR; reject carries a
// reason from the fixed enum; reset carries nothing extra.
type AuthorizePayoutRequest struct {
	ID     uuid.UUID     `json:"id" validate:"required"`
	Action entity.Action `json:"action" validate:"required,oneof=approve reject reset"`
	Method string        `json:"method,omitempty"`
	UTR    string        `json:"utr,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// CheckPayload enforces the per-action field contract before any data access.
func (r *AuthorizePayoutRequest) CheckPayload() *response.CustomError {
	switch r.Action {
	case entity.ActionApprove:
		method := entity.DisbursementMethod(r.Method)
		if !method.Valid() {
			return response.BadRequestError("approve requires a disbursement method")
		}
		if method == entity.DisbursementManual && r.UTR == "" {
			return response.BadRequestError("manual approval requires a UTR reference")
		}
	case entity.ActionReject:
		if !entity.RejectReason(r.Reason).Valid() {
			return response.BadRequestError("reject requires a valid reason")
		}
	case entity.ActionReset:
		if r.Method != "" || r.UTR != "" || r.Reason != "" {
			return response.BadRequestError("reset takes no additional fields")
		}
	}
	return nil
}
