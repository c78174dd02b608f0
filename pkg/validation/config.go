// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/amortization"
	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/mathutil"
)

// ValidateLoan returns warnings for loan requests that are valid but will not
// behave as written, e.g. a moratorium that gets clamped or prepayments that
// can never apply.
func ValidateLoan(name string, req amortization.Request) []string {
	var warnings []string

	if active := req.ActiveMoratorium(); active < req.MoratoriumMonths {
		warnings = append(warnings, fmt.Sprintf(
			"Loan '%s' moratorium of %d months leaves no repayment period; clamped to %d months",
			name, req.MoratoriumMonths, active))
	}

	if req.MoratoriumMonths == 0 && req.MoratoriumMode != amortization.PayMonthly {
		warnings = append(warnings, fmt.Sprintf(
			"Loan '%s' sets moratorium mode %s without any moratorium months",
			name, req.MoratoriumMode))
	}

	if req.Prepayment == nil {
		return warnings
	}

	switch req.Prepayment.Frequency {
	case amortization.PrepayMonthly:
		if mathutil.IsZero(req.Prepayment.Amount) {
			warnings = append(warnings, fmt.Sprintf(
				"Loan '%s' has a monthly prepayment of zero; it has no effect", name))
		}
	case amortization.PrepayYearly:
		if mathutil.IsZero(req.Prepayment.Amount) {
			warnings = append(warnings, fmt.Sprintf(
				"Loan '%s' has a yearly prepayment of zero; it has no effect", name))
		}
		if req.TenureMonths < constants.MonthsPerYear {
			warnings = append(warnings, fmt.Sprintf(
				"Loan '%s' has a yearly prepayment but a tenure of only %d months; it will never apply",
				name, req.TenureMonths))
		}
	case amortization.PrepayCustom:
		moratorium := req.ActiveMoratorium()
		for _, entry := range req.Prepayment.Entries {
			if mathutil.IsZero(entry.Amount) {
				warnings = append(warnings, fmt.Sprintf(
					"Loan '%s' custom prepayment in period %d is zero; it has no effect",
					name, entry.Period))
			}
			if entry.Period > req.TenureMonths {
				warnings = append(warnings, fmt.Sprintf(
					"Loan '%s' custom prepayment in period %d is beyond the tenure of %d months",
					name, entry.Period, req.TenureMonths))
			} else if entry.Period <= moratorium {
				warnings = append(warnings, fmt.Sprintf(
					"Loan '%s' custom prepayment in period %d falls in the moratorium and is ignored",
					name, entry.Period))
			}
		}
	}

	return warnings
}
