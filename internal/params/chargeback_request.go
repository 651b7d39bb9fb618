package params

import (
	"go-payment-admin/internal/entity"
)

// ResolveChargebackRequest closes an open chargeback either by accepting it
// (merchant absorbs the loss) or disputing it with supporting context.
type ResolveChargebackRequest struct {
	Status entity.ChargebackStatus `json:"status" validate:"required,oneof=accepted disputed"`
	Reason string                  `json:"reason,omitempty" validate:"max=500"`
}
