// Package output provides utilities for formatting and exporting amortization
// results.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iwvelando/emi-calc/pkg/amortization"
	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/format"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display controls how amounts are rendered in human-readable output.
type Display struct {
	Symbol   string
	Grouping string
	printer  *message.Printer
}

// NewDisplay builds a Display for the given locale (e.g. "en-IN"). An empty
// grouping is derived from the locale's region; an invalid locale falls back
// to English.
func NewDisplay(symbol, grouping, locale string) Display {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	if grouping == "" {
		grouping = constants.GroupingWestern
		if region, _ := tag.Region(); region.String() == "IN" {
			grouping = constants.GroupingIndian
		}
	}
	return Display{Symbol: symbol, Grouping: grouping, printer: format.NewPrinter(grouping)}
}

func (d Display) numberPrinter() *message.Printer {
	if d.printer == nil {
		return format.NewPrinter(d.Grouping)
	}
	return d.printer
}

func (d Display) currency(amount float64) string {
	return format.Currency(d.numberPrinter(), amount, d.Symbol)
}

func (d Display) money(amount decimal.Decimal) string {
	return d.currency(amount.InexactFloat64())
}

// errWriter remembers the first write error so a run of prints can be checked
// once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (d Display) fprintf(w *errWriter, layout string, args ...interface{}) {
	_, _ = d.numberPrinter().Fprintf(w, layout, args...)
}

// PrettyFormat writes a human-readable summary and schedule table.
func PrettyFormat(w io.Writer, name string, result amortization.Result, startMonth string, d Display) error {
	records, err := Records(result, startMonth)
	if err != nil {
		return err
	}
	totals := SummarizeTotals(result)
	out := &errWriter{w: w}

	d.fprintf(out, "--- Amortization schedule for %s ---\n", name)
	d.fprintf(out, "Periodic payment | %s\n", d.money(totals.PeriodicPayment))
	d.fprintf(out, "Total interest   | %s\n", d.money(totals.TotalInterest))
	d.fprintf(out, "Total paid       | %s\n", d.money(totals.TotalPaid))
	d.fprintf(out, "Periods          | %d\n", len(records))
	d.fprintf(out, "\n")
	d.fprintf(out, "Period | Month   | Principal | Interest | Total payment | Balance | Notes\n")
	d.fprintf(out, "______ | _____   | _________ | ________ | _____________ | _______ | _____\n")
	for _, record := range records {
		note := ""
		if record.Moratorium {
			note = "moratorium"
		}
		d.fprintf(out, "%d | %s | %s | %s | %s | %s | %s\n",
			record.Period, record.Month,
			d.money(record.Principal), d.money(record.Interest),
			d.money(record.TotalPayment), d.money(record.Balance), note)
	}
	return out.err
}

// CsvHeader is the header row written by CsvFormat.
var CsvHeader = []string{"loan", "period", "month", "principal", "interest", "total payment", "balance", "moratorium"}

// CsvFormat writes the schedule as comma-separated values.
func CsvFormat(w io.Writer, name string, result amortization.Result, startMonth string, header bool) error {
	records, err := Records(result, startMonth)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if header {
		if err := writer.Write(CsvHeader); err != nil {
			return err
		}
	}
	for _, record := range records {
		row := []string{
			name,
			strconv.Itoa(record.Period),
			record.Month,
			record.Principal.StringFixed(constants.CurrencyPlaces),
			record.Interest.StringFixed(constants.CurrencyPlaces),
			record.TotalPayment.StringFixed(constants.CurrencyPlaces),
			record.Balance.StringFixed(constants.CurrencyPlaces),
			strconv.FormatBool(record.Moratorium),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ComparisonFormat writes two offers side by side.
func ComparisonFormat(w io.Writer, firstName, secondName string, cmp amortization.Comparison, d Display) error {
	first := SummarizeTotals(cmp.First)
	second := SummarizeTotals(cmp.Second)
	out := &errWriter{w: w}

	d.fprintf(out, "--- Comparison of %s and %s ---\n", firstName, secondName)
	d.fprintf(out, "                 | %s | %s | Difference\n", firstName, secondName)
	d.fprintf(out, "Periodic payment | %s | %s | %s\n",
		d.money(first.PeriodicPayment), d.money(second.PeriodicPayment), d.currency(cmp.PaymentDifference))
	d.fprintf(out, "Total interest   | %s | %s | %s\n",
		d.money(first.TotalInterest), d.money(second.TotalInterest), d.currency(cmp.InterestDifference))
	d.fprintf(out, "Total paid       | %s | %s | %s\n",
		d.money(first.TotalPaid), d.money(second.TotalPaid), d.currency(cmp.TotalPaidDifference))
	switch cmp.Cheaper() {
	case 1:
		d.fprintf(out, "Cheaper offer    | %s\n", firstName)
	case 2:
		d.fprintf(out, "Cheaper offer    | %s\n", secondName)
	default:
		d.fprintf(out, "Cheaper offer    | neither\n")
	}
	return out.err
}

// EligibilityFormat writes an eligibility estimate for a loan at the given
// rate and tenure.
func EligibilityFormat(w io.Writer, name string, annualRatePercent float64, tenureMonths int, e amortization.Eligibility, d Display) error {
	out := &errWriter{w: w}

	d.fprintf(out, "--- Eligibility for %s ---\n", name)
	d.fprintf(out, "Existing obligations | %.1f%% of income\n", e.ObligationPercent)
	d.fprintf(out, "Affordable payment   | %s\n", d.currency(e.AffordablePayment))
	d.fprintf(out, "Maximum principal    | %s at %.2f%% over %d months\n",
		d.currency(e.MaxPrincipal), annualRatePercent, tenureMonths)
	return out.err
}
