package amortization

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/mathutil"
)

// Comparison holds two plain loan offers side by side. Differences are
// Second minus First.
type Comparison struct {
	First               Result
	Second              Result
	PaymentDifference   float64
	InterestDifference  float64
	TotalPaidDifference float64
}

// Compare computes both offers without moratorium or prepayment and reports
// how they differ.
func Compare(first, second Request) (Comparison, error) {
	a, err := Compute(plain(first))
	if err != nil {
		return Comparison{}, fmt.Errorf("first offer: %w", err)
	}
	b, err := Compute(plain(second))
	if err != nil {
		return Comparison{}, fmt.Errorf("second offer: %w", err)
	}

	return Comparison{
		First:               a,
		Second:              b,
		PaymentDifference:   b.PeriodicPayment - a.PeriodicPayment,
		InterestDifference:  b.TotalInterest - a.TotalInterest,
		TotalPaidDifference: b.TotalPaid - a.TotalPaid,
	}, nil
}

// Cheaper returns 1 or 2 for the offer with the lower total paid, or 0 when
// they are equal to the cent.
func (c Comparison) Cheaper() int {
	switch {
	case mathutil.WithinTolerance(c.First.TotalPaid, c.Second.TotalPaid, constants.CurrencyTolerance):
		return 0
	case c.First.TotalPaid < c.Second.TotalPaid:
		return 1
	default:
		return 2
	}
}

func plain(req Request) Request {
	req.MoratoriumMonths = 0
	req.MoratoriumMode = PayMonthly
	req.Prepayment = nil
	return req
}
