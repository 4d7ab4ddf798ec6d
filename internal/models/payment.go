package models

// Payment types.
const (
	PaymentRent            = "rent"
	PaymentExpenses        = "expenses"
	PaymentDepositCollect  = "deposit_collected"
	PaymentDepositReturned = "deposit_returned"
)

// Payment methods.
const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
)

// Payment statuses. A payment moves from pending (or under_review when
// recorded by collections staff) toward paid; only admin or supervisor may
// mark it paid.
const (
	PaymentPending     = "pending"
	PaymentUnderReview = "under_review"
	PaymentPaid        = "paid"
	PaymentLate        = "late"
)

// Payment represents a money movement tied to a contract for a billing
// period. Payments are mutated only through the status state machine and
// are never deleted.
type Payment struct {
	ID string `json:"id"`

	ContractID string `json:"contractId"`

	// Period is the billing cycle the payment belongs to, "YYYY-MM".
	Period string `json:"period"`

	// PaidAt is the Unix timestamp the money moved. Nil until paid.
	PaidAt *int64 `json:"paidAt"`

	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Status string  `json:"status"`

	// CreatedBy is the user who recorded the payment.
	CreatedBy string `json:"createdBy"`

	// ReviewedBy is the user who marked the payment as paid. Nil until
	// the paid transition happens.
	ReviewedBy *string `json:"reviewedBy"`

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last mutation. Nil until the
	// first update.
	UpdatedAt *int64 `json:"updatedAt"`

	Notes string `json:"notes,omitempty"`
}

// PaymentPatch is a partial update for a payment. Contract, period, type
// and creator are fixed at creation.
type PaymentPatch struct {
	PaidAt *int64   `json:"paidAt"`
	Amount *float64 `json:"amount"`
	Method *string  `json:"method"`
	Status *string  `json:"status"`
	Notes  *string  `json:"notes"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *PaymentPatch) IsEmpty() bool {
	return p.PaidAt == nil && p.Amount == nil && p.Method == nil &&
		p.Status == nil && p.Notes == nil
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	ContractID string
	Type       string
	Status     string
	Period     string
}
