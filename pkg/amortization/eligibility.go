package amortization

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/mathutil"
)

// AffordablePayment returns the monthly payment headroom left after existing
// obligations when total obligations may not exceed maxObligationPercent of
// monthlyIncome. The result is never negative.
func AffordablePayment(monthlyIncome, existingObligations, maxObligationPercent float64) (float64, error) {
	if !mathutil.IsFinite(monthlyIncome) || monthlyIncome < 0 {
		return 0, fmt.Errorf("%w: monthly income must be a non-negative number, got %v", ErrInvalidArgument, monthlyIncome)
	}
	if !mathutil.IsFinite(existingObligations) || existingObligations < 0 {
		return 0, fmt.Errorf("%w: existing obligations must be a non-negative number, got %v", ErrInvalidArgument, existingObligations)
	}
	if !mathutil.IsFinite(maxObligationPercent) || maxObligationPercent < 0 || maxObligationPercent > constants.PercentageMultiplier {
		return 0, fmt.Errorf("%w: obligation limit must be between 0 and 100 percent, got %v", ErrInvalidArgument, maxObligationPercent)
	}

	return max(0, mathutil.ApplyPercentage(monthlyIncome, maxObligationPercent)-existingObligations), nil
}

// MaxPrincipal returns the largest principal whose level payment over
// tenureMonths does not exceed payment.
func MaxPrincipal(payment, annualRatePercent float64, tenureMonths int) (float64, error) {
	if !mathutil.IsFinite(payment) || payment < 0 {
		return 0, fmt.Errorf("%w: payment must be a non-negative number, got %v", ErrInvalidArgument, payment)
	}
	if !mathutil.IsFinite(annualRatePercent) || annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: annual rate must be a non-negative number, got %v", ErrInvalidArgument, annualRatePercent)
	}
	if tenureMonths <= 0 {
		return 0, fmt.Errorf("%w: tenure must be at least one month, got %d", ErrInvalidArgument, tenureMonths)
	}
	principal := PresentValue(payment, annualRatePercent, tenureMonths)
	if !mathutil.IsFinite(principal) {
		return 0, fmt.Errorf("%w: principal overflows for payment %v at %v%% over %d months",
			ErrInvalidArgument, payment, annualRatePercent, tenureMonths)
	}
	return principal, nil
}

// Eligibility is the outcome of an eligibility estimate.
type Eligibility struct {
	// ObligationPercent is the share of income already committed to EMIs.
	ObligationPercent float64
	AffordablePayment float64
	MaxPrincipal      float64
}

// EstimateEligibility combines AffordablePayment and MaxPrincipal: the
// largest loan whose EMI fits in the income left under maxObligationPercent.
func EstimateEligibility(monthlyIncome, existingObligations, maxObligationPercent, annualRatePercent float64, tenureMonths int) (Eligibility, error) {
	payment, err := AffordablePayment(monthlyIncome, existingObligations, maxObligationPercent)
	if err != nil {
		return Eligibility{}, err
	}
	principal, err := MaxPrincipal(payment, annualRatePercent, tenureMonths)
	if err != nil {
		return Eligibility{}, err
	}
	return Eligibility{
		ObligationPercent: mathutil.CalculatePercentage(existingObligations, monthlyIncome),
		AffordablePayment: payment,
		MaxPrincipal:      principal,
	}, nil
}
