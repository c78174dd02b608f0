package config

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/amortization"
	"github.com/iwvelando/emi-calc/pkg/constants"
)

// ToRequest converts a configured Loan into an amortization request.
func (loan *Loan) ToRequest() (amortization.Request, error) {
	mode, err := amortization.ParseMoratoriumMode(loan.Moratorium.Mode)
	if err != nil {
		return amortization.Request{}, err
	}

	req := amortization.Request{
		Principal:         loan.Principal,
		AnnualRatePercent: loan.AnnualRatePercent,
		TenureMonths:      loan.Tenure(),
		MoratoriumMonths:  loan.Moratorium.Months,
		MoratoriumMode:    mode,
	}

	if loan.Prepayment != nil {
		prepayment, err := loan.Prepayment.toPrepayment()
		if err != nil {
			return amortization.Request{}, err
		}
		req.Prepayment = prepayment
	}

	return req, nil
}

// Tenure returns the tenure in months, falling back to TenureYears.
func (loan *Loan) Tenure() int {
	return tenureMonths(loan.TenureMonths, loan.TenureYears)
}

// Tenure returns the tenure in months, falling back to TenureYears.
func (check *EligibilityCheck) Tenure() int {
	return tenureMonths(check.TenureMonths, check.TenureYears)
}

func tenureMonths(months, years int) int {
	if months == 0 && years > 0 {
		return years * constants.MonthsPerYear
	}
	return months
}

func (p *Prepayment) toPrepayment() (*amortization.Prepayment, error) {
	frequency, err := amortization.ParsePrepaymentFrequency(p.Frequency)
	if err != nil {
		return nil, err
	}

	prepayment := &amortization.Prepayment{Frequency: frequency, Amount: p.Amount}
	if frequency == amortization.PrepayCustom {
		if len(p.Entries) == 0 {
			return nil, fmt.Errorf("%w: custom prepayment requires at least one entry", amortization.ErrInvalidArgument)
		}
		for _, entry := range p.Entries {
			prepayment.Entries = append(prepayment.Entries, amortization.CustomPrepayment{
				Period: entry.Period,
				Amount: entry.Amount,
			})
		}
	}
	return prepayment, nil
}
