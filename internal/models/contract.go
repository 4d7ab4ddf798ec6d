package models

// Contract states.
const (
	ContractActive   = "active"
	ContractFinished = "finished"
)

// Deposit settlement states. Returned states require a settlement date;
// a partial return additionally requires an amount.
const (
	SettlementPending         = "pending"
	SettlementCalculated      = "calculated"
	SettlementReturnedFull    = "returned_full"
	SettlementReturnedPartial = "returned_partial"
)

// DepositSettlement records how the deposit held for a contract is settled
// when the lease ends. It is embedded in the contract.
type DepositSettlement struct {
	State string `json:"state"`

	// AmountToReturn is the computed or agreed amount to give back to the
	// tenant. Nil until calculated.
	AmountToReturn *float64 `json:"amountToReturn"`

	// SettledAt is the Unix timestamp of the settlement. Nil until the
	// deposit is actually returned.
	SettledAt *int64 `json:"settledAt"`
}

// Contract represents a lease binding a room and a tenant.
//
// Invariant: at most one contract with State == ContractActive references a
// given room at any time. The store enforces this with a partial unique
// index; the service pre-checks it to surface a conflict error.
type Contract struct {
	ID string `json:"id"`

	RoomID   string `json:"roomId"`
	TenantID string `json:"tenantId"`

	// StartDate and EndDate are Unix timestamps bounding the lease.
	StartDate int64 `json:"startDate"`
	EndDate   int64 `json:"endDate"`

	MonthlyRent float64 `json:"monthlyRent"`

	// Deposit is the refundable sum held against the lease (fianza).
	Deposit float64 `json:"deposit"`

	// ExpenseTariff is the fixed monthly amount billed for utilities.
	ExpenseTariff float64 `json:"expenseTariff"`

	HasCleaning bool `json:"hasCleaning"`

	// State is ContractActive or ContractFinished.
	State string `json:"state"`

	// Archived hides the contract from day-to-day listings without
	// deleting it. Contracts are never hard-deleted.
	Archived bool `json:"archived"`

	Settlement DepositSettlement `json:"settlement"`
}

// ContractPatch is a partial update for a contract. Only the end date,
// monthly rent, state, archived flag and settlement record may change
// after creation.
type ContractPatch struct {
	EndDate     *int64             `json:"endDate"`
	MonthlyRent *float64           `json:"monthlyRent"`
	State       *string            `json:"state"`
	Archived    *bool              `json:"archived"`
	Settlement  *DepositSettlement `json:"settlement"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *ContractPatch) IsEmpty() bool {
	return p.EndDate == nil && p.MonthlyRent == nil && p.State == nil &&
		p.Archived == nil && p.Settlement == nil
}

// ContractFilter narrows contract listings.
type ContractFilter struct {
	// PropertyID restricts to contracts whose room belongs to the property.
	PropertyID string
	RoomID     string
	TenantID   string
	State      string
}
