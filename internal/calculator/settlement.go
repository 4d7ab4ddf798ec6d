// Package calculator implements the pure arithmetic of deposit settlement.
package calculator

import (
	"fmt"
	"math"
)

// Settlement is the computed outcome of settling a deposit at the end of a
// lease.
type Settlement struct {
	// Deposit is the sum originally held.
	Deposit float64

	// Deducted is the portion of the deposit consumed by offsetting
	// expenses, capped at the deposit itself.
	Deducted float64

	// AmountToReturn is what the tenant gets back. Never negative:
	// deductions beyond the deposit are not charged back through the
	// settlement.
	AmountToReturn float64

	// FullReturn reports whether the whole deposit is returned.
	FullReturn bool
}

// SettleDeposit computes how much of a deposit to return after subtracting
// the given deductions (deposit-offsetting expense amounts).
func SettleDeposit(deposit float64, deductions []float64) (Settlement, error) {
	if deposit < 0 {
		return Settlement{}, fmt.Errorf("deposit cannot be negative")
	}

	var deducted float64
	for _, d := range deductions {
		if d < 0 {
			return Settlement{}, fmt.Errorf("deduction cannot be negative")
		}
		deducted += d
	}

	if deducted > deposit {
		deducted = deposit
	}

	toReturn := roundCents(deposit - deducted)
	return Settlement{
		Deposit:        deposit,
		Deducted:       roundCents(deducted),
		AmountToReturn: toReturn,
		FullReturn:     toReturn == roundCents(deposit),
	}, nil
}

// roundCents rounds a monetary amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
