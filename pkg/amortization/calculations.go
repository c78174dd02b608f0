package amortization

import (
	"math"

	"github.com/iwvelando/emi-calc/pkg/mathutil"
)

// LevelPayment calculates the equated periodic payment that repays balance
// over periods months using the standard annuity formula.
func LevelPayment(balance, annualRatePercent float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		// For zero interest, simply divide the balance by the term
		return balance / float64(periods)
	}

	rate := mathutil.MonthlyRate(annualRatePercent)
	power := math.Pow(1+rate, float64(periods))
	return balance * rate * power / (power - 1)
}

// PeriodInterest calculates the interest accrued on balance over one month.
func PeriodInterest(balance, annualRatePercent float64) float64 {
	return balance * mathutil.MonthlyRate(annualRatePercent)
}

// PresentValue is the inverse of LevelPayment: the balance that payment
// repays over periods months.
func PresentValue(payment, annualRatePercent float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		return payment * float64(periods)
	}

	rate := mathutil.MonthlyRate(annualRatePercent)
	power := math.Pow(1+rate, float64(periods))
	return payment * (power - 1) / (rate * power)
}
