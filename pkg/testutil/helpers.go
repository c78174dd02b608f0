// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/emi-calc/pkg/amortization"
)

// ReferenceLoan returns the 500,000 at 9.5% over 20 years loan used as a
// baseline across tests.
func ReferenceLoan() amortization.Request {
	return amortization.Request{
		Principal:         500000,
		AnnualRatePercent: 9.5,
		TenureMonths:      240,
	}
}

// FindEntry finds a schedule entry by period.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(result amortization.Result, period int) *amortization.Entry {
	for i := range result.Schedule {
		if result.Schedule[i].Period == period {
			return &result.Schedule[i]
		}
	}
	return nil
}

// RepaymentEntries returns the entries after the moratorium.
func RepaymentEntries(result amortization.Result) []amortization.Entry {
	for i, entry := range result.Schedule {
		if !entry.Moratorium {
			return result.Schedule[i:]
		}
	}
	return nil
}

// SumPayments returns the total of principal plus interest across the schedule.
func SumPayments(result amortization.Result) float64 {
	total := 0.0
	for _, entry := range result.Schedule {
		total += entry.TotalPayment()
	}
	return total
}
