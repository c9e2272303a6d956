// Package ledger computes derived figures over an account's movement
// list. Everything here is pure: callers pass movements in, numbers
// come out, nothing is stored.
package ledger

import (
	"math"

	"github.com/mkalan/bankist/internal/constants"
	"github.com/mkalan/bankist/internal/model"
)

// Summary holds the derived figures for one account, in cents.
type Summary struct {
	Balance     int64
	Deposits    int64
	Withdrawals int64
	Interest    int64
}

// Balance is the running sum of all movements. There is no stored
// balance anywhere in the system; this is it.
func Balance(movements []model.Movement) int64 {
	var total int64
	for _, m := range movements {
		total += m.Amount
	}
	return total
}

// Deposits sums the positive movements.
func Deposits(movements []model.Movement) int64 {
	var total int64
	for _, m := range movements {
		if m.Amount > 0 {
			total += m.Amount
		}
	}
	return total
}

// Withdrawals sums the negative movements and returns the absolute value.
func Withdrawals(movements []model.Movement) int64 {
	var total int64
	for _, m := range movements {
		if m.Amount < 0 {
			total += m.Amount
		}
	}
	return -total
}

// Interest credits interestRate percent on each deposit, counting only
// contributions of at least one whole currency unit. A deposit whose
// contribution falls under the threshold earns nothing at all; this is
// a per-deposit rule, not a rounding of the total.
func Interest(movements []model.Movement, interestRate float64) int64 {
	var total float64
	for _, m := range movements {
		if m.Amount <= 0 {
			continue
		}
		contribution := float64(m.Amount) * interestRate / 100
		if contribution >= constants.InterestThresholdCents {
			total += contribution
		}
	}
	return int64(math.Round(total))
}

// Summarize computes the full summary in one pass over the list.
func Summarize(movements []model.Movement, interestRate float64) Summary {
	return Summary{
		Balance:     Balance(movements),
		Deposits:    Deposits(movements),
		Withdrawals: Withdrawals(movements),
		Interest:    Interest(movements, interestRate),
	}
}
