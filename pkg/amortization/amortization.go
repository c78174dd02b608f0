// Package amortization computes loan amortization schedules with optional
// payment moratoriums and prepayments.
package amortization

import (
	"fmt"
	"math"

	"github.com/iwvelando/emi-calc/pkg/mathutil"
)

// Entry is one period of an amortization schedule.
//
// Principal is negative for moratorium periods whose interest is capitalized
// rather than paid (negative amortization), so TotalPayment is zero for them.
type Entry struct {
	Period     int
	Principal  float64
	Interest   float64
	Balance    float64
	Moratorium bool
}

// TotalPayment is the amount paid in the period.
func (e Entry) TotalPayment() float64 {
	return e.Principal + e.Interest
}

// Result holds the level payment, aggregate totals and the full schedule.
type Result struct {
	// PeriodicPayment is the level payment of the repayment phase, excluding
	// prepayments. It is zero when no repayment periods exist.
	PeriodicPayment   float64
	TotalInterest     float64
	TotalPaid         float64
	Schedule          []Entry
	MoratoriumApplied bool
}

// PrincipalPaid returns the net principal repaid across the schedule.
func (r Result) PrincipalPaid() float64 {
	total := 0.0
	for _, entry := range r.Schedule {
		total += entry.Principal
	}
	return total
}

// FinalBalance returns the ending balance of the last scheduled period.
func (r Result) FinalBalance() float64 {
	if len(r.Schedule) == 0 {
		return 0
	}
	return r.Schedule[len(r.Schedule)-1].Balance
}

type schedule struct {
	rate          float64 // annual, percent
	balance       float64
	totalInterest float64
	totalPaid     float64
	entries       []Entry
}

// Compute produces the amortization schedule for req. It has no side effects
// and is safe for concurrent use.
//
// The level payment is computed once, against the balance entering the
// repayment phase. Prepayments shorten the schedule; they never lower the
// level payment.
func Compute(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	s := &schedule{
		rate:    req.AnnualRatePercent,
		balance: req.Principal,
		entries: make([]Entry, 0, req.TenureMonths),
	}

	moratorium := req.ActiveMoratorium()
	s.accrue(moratorium, req.MoratoriumMode)

	result := Result{MoratoriumApplied: moratorium > 0}
	if remaining := req.TenureMonths - moratorium; remaining > 0 {
		result.PeriodicPayment = LevelPayment(s.balance, req.AnnualRatePercent, remaining)
		if !mathutil.IsFinite(result.PeriodicPayment) {
			return Result{}, fmt.Errorf("%w: level payment overflows for principal %v at %v%% over %d months",
				ErrInvalidArgument, req.Principal, req.AnnualRatePercent, remaining)
		}
		s.repay(moratorium+1, req.TenureMonths, result.PeriodicPayment, req.Prepayment)
	}

	if !mathutil.IsFinite(s.totalInterest) || !mathutil.IsFinite(s.totalPaid) {
		return Result{}, fmt.Errorf("%w: totals overflow for principal %v at %v%% over %d months",
			ErrInvalidArgument, req.Principal, req.AnnualRatePercent, req.TenureMonths)
	}

	result.TotalInterest = s.totalInterest
	result.TotalPaid = s.totalPaid
	result.Schedule = s.entries
	return result, nil
}

// accrue runs the moratorium phase.
func (s *schedule) accrue(months int, mode MoratoriumMode) {
	accrued := 0.0
	for period := 1; period <= months; period++ {
		interest := PeriodInterest(s.balance, s.rate)
		s.totalInterest += interest

		entry := Entry{Period: period, Interest: interest, Moratorium: true}
		switch mode {
		case PayMonthly:
			s.totalPaid += interest
		case CapitalizeSimple:
			accrued += interest
			entry.Principal = -interest
		case CapitalizeCompound:
			s.balance += interest
			entry.Principal = -interest
		}
		entry.Balance = s.balance
		s.entries = append(s.entries, entry)
	}

	if mode == CapitalizeSimple {
		s.capitalize(accrued)
	}
}

// capitalize adds interest accrued during a simple-capitalization moratorium
// to the balance and records it on the last moratorium period.
func (s *schedule) capitalize(accrued float64) {
	s.balance += accrued
	if n := len(s.entries); n > 0 {
		s.entries[n-1].Balance = s.balance
	}
}

// repay runs the repayment phase from period first through last, stopping
// early once the balance is settled.
func (s *schedule) repay(first, last int, payment float64, prepayment *Prepayment) {
	for period := first; period <= last; period++ {
		interest := PeriodInterest(s.balance, s.rate)
		principal := payment + prepayment.Extra(period) - interest

		// Clamp overpayment and fold any sub-tolerance residue into this period.
		if principal > s.balance || mathutil.IsSettled(s.balance-principal) {
			principal = s.balance
		}
		s.balance = math.Max(0, s.balance-principal)

		s.totalInterest += interest
		s.totalPaid += principal + interest
		s.entries = append(s.entries, Entry{
			Period:    period,
			Principal: principal,
			Interest:  interest,
			Balance:   s.balance,
		})

		if mathutil.IsSettled(s.balance) {
			return
		}
	}
}
