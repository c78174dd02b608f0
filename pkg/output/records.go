package output

import (
	"github.com/iwvelando/emi-calc/pkg/amortization"
	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/datetime"
	"github.com/shopspring/decimal"
)

// Record is one schedule period flattened for export, with amounts rounded
// to currency precision.
type Record struct {
	Period       int
	Month        string
	Principal    decimal.Decimal
	Interest     decimal.Decimal
	TotalPayment decimal.Decimal
	Balance      decimal.Decimal
	Moratorium   bool
}

// Records flattens the schedule of result. When startMonth is set each record
// carries the calendar month of its period.
func Records(result amortization.Result, startMonth string) ([]Record, error) {
	var months []string
	if startMonth != "" {
		var err error
		months, err = datetime.PeriodLabels(startMonth, len(result.Schedule))
		if err != nil {
			return nil, err
		}
	}

	records := make([]Record, len(result.Schedule))
	for i, entry := range result.Schedule {
		principal := roundCurrency(entry.Principal)
		interest := roundCurrency(entry.Interest)
		records[i] = Record{
			Period:       entry.Period,
			Principal:    principal,
			Interest:     interest,
			TotalPayment: principal.Add(interest),
			Balance:      roundCurrency(entry.Balance),
			Moratorium:   entry.Moratorium,
		}
		if months != nil {
			records[i].Month = months[i]
		}
	}
	return records, nil
}

// Totals holds the aggregate amounts of a result rounded to currency precision.
type Totals struct {
	PeriodicPayment decimal.Decimal
	TotalInterest   decimal.Decimal
	TotalPaid       decimal.Decimal
}

// SummarizeTotals rounds the aggregates of result.
func SummarizeTotals(result amortization.Result) Totals {
	return Totals{
		PeriodicPayment: roundCurrency(result.PeriodicPayment),
		TotalInterest:   roundCurrency(result.TotalInterest),
		TotalPaid:       roundCurrency(result.TotalPaid),
	}
}

func roundCurrency(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(constants.CurrencyPlaces)
}
