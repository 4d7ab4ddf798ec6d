package models

// Expense represents a cost charged against a contract (repairs, supplies,
// damages). Expenses flagged OffsetsDeposit are subtracted from the deposit
// when the settlement is calculated.
type Expense struct {
	ID string `json:"id"`

	ContractID string `json:"contractId"`

	// Date is the Unix timestamp the expense was incurred.
	Date int64 `json:"date"`

	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`

	OffsetsDeposit bool `json:"offsetsDeposit"`
}

// ExpensePatch is a partial update for an expense.
type ExpensePatch struct {
	Date           *int64   `json:"date"`
	Concept        *string  `json:"concept"`
	Amount         *float64 `json:"amount"`
	OffsetsDeposit *bool    `json:"offsetsDeposit"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *ExpensePatch) IsEmpty() bool {
	return p.Date == nil && p.Concept == nil && p.Amount == nil &&
		p.OffsetsDeposit == nil
}
