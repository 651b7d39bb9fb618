package entity

// Action is an authorize operation requested against a payout or settlement.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReset   Action = "reset"
)

// RejectReason is the closed set of reasons an operator may pick when
// rejecting a payout or settlement.
type RejectReason string

const (
	RejectReasonInsufficientFunds  RejectReason = "insufficient_funds"
	RejectReasonInvalidBankDetails RejectReason = "invalid_bank_details"
	RejectReasonOther              RejectReason = "other"
)

func (r RejectReason) Valid() bool {
	switch r {
	case RejectReasonInsufficientFunds, RejectReasonInvalidBankDetails, RejectReasonOther:
		return true
	}
	return false
}

// DisbursementMethod selects how an approved payout is paid out. Manual
// approvals carry a bank UTR as proof; gateway approvals hand the transfer to
// the configured provider.
type DisbursementMethod string

const (
	DisbursementManual  DisbursementMethod = "manual"
	DisbursementGateway DisbursementMethod = "gateway"
)

func (m DisbursementMethod) Valid() bool {
	return m == DisbursementManual || m == DisbursementGateway
}
