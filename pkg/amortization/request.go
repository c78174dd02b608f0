package amortization

import (
	"fmt"
	"strings"

	"github.com/iwvelando/emi-calc/pkg/constants"
	"github.com/iwvelando/emi-calc/pkg/mathutil"
)

// MoratoriumMode governs how interest accrued during the moratorium is treated.
type MoratoriumMode int

const (
	// PayMonthly pays the interest each moratorium period; the balance is unchanged.
	PayMonthly MoratoriumMode = iota
	// CapitalizeSimple accrues interest on the original balance and adds the
	// total to the balance once the moratorium ends.
	CapitalizeSimple
	// CapitalizeCompound adds interest to the balance every period.
	CapitalizeCompound
)

var moratoriumModeNames = map[MoratoriumMode]string{
	PayMonthly:         "pay-monthly",
	CapitalizeSimple:   "capitalize-simple",
	CapitalizeCompound: "capitalize-compound",
}

func (m MoratoriumMode) String() string {
	if name, ok := moratoriumModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MoratoriumMode(%d)", int(m))
}

// ParseMoratoriumMode converts a config value such as "capitalize-simple" into
// a MoratoriumMode. An empty value means PayMonthly.
func ParseMoratoriumMode(value string) (MoratoriumMode, error) {
	switch normalize(value) {
	case "", "paymonthly", "pay", "interestonly":
		return PayMonthly, nil
	case "capitalizesimple", "simple":
		return CapitalizeSimple, nil
	case "capitalizecompound", "compound":
		return CapitalizeCompound, nil
	}
	return PayMonthly, fmt.Errorf("%w: unknown moratorium mode %q", ErrInvalidArgument, value)
}

// PrepaymentFrequency selects how extra payments are scheduled.
type PrepaymentFrequency int

const (
	// PrepayMonthly adds a fixed amount to every repayment period.
	PrepayMonthly PrepaymentFrequency = iota
	// PrepayYearly adds a fixed amount on periods divisible by 12.
	PrepayYearly
	// PrepayCustom applies one-off amounts on named periods.
	PrepayCustom
)

var frequencyNames = map[PrepaymentFrequency]string{
	PrepayMonthly: "monthly",
	PrepayYearly:  "yearly",
	PrepayCustom:  "custom",
}

func (f PrepaymentFrequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PrepaymentFrequency(%d)", int(f))
}

// ParsePrepaymentFrequency converts a config value such as "yearly" into a
// PrepaymentFrequency.
func ParsePrepaymentFrequency(value string) (PrepaymentFrequency, error) {
	switch normalize(value) {
	case "monthly":
		return PrepayMonthly, nil
	case "yearly", "annual", "annually":
		return PrepayYearly, nil
	case "custom", "onetime":
		return PrepayCustom, nil
	}
	return PrepayMonthly, fmt.Errorf("%w: unknown prepayment frequency %q", ErrInvalidArgument, value)
}

func normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(value)
}

// CustomPrepayment is a one-off extra payment in a given period.
type CustomPrepayment struct {
	Period int
	Amount float64
}

// Prepayment describes extra payments applied to principal on top of the
// level payment.
type Prepayment struct {
	Frequency PrepaymentFrequency
	Amount    float64
	Entries   []CustomPrepayment
}

// Extra returns the extra payment due in the given period. Custom entries
// that target the same period are summed.
func (p *Prepayment) Extra(period int) float64 {
	if p == nil {
		return 0
	}
	switch p.Frequency {
	case PrepayMonthly:
		return p.Amount
	case PrepayYearly:
		if period%constants.MonthsPerYear == 0 {
			return p.Amount
		}
	case PrepayCustom:
		total := 0.0
		for _, entry := range p.Entries {
			if entry.Period == period {
				total += entry.Amount
			}
		}
		return total
	}
	return 0
}

func (p *Prepayment) validate() error {
	if p == nil {
		return nil
	}
	switch p.Frequency {
	case PrepayMonthly, PrepayYearly:
		if !mathutil.IsFinite(p.Amount) || p.Amount < 0 {
			return fmt.Errorf("%w: %s prepayment amount must be a non-negative number, got %v",
				ErrInvalidArgument, p.Frequency, p.Amount)
		}
	case PrepayCustom:
		for _, entry := range p.Entries {
			if entry.Period < 1 {
				return fmt.Errorf("%w: custom prepayment period must be at least 1, got %d",
					ErrInvalidArgument, entry.Period)
			}
			if !mathutil.IsFinite(entry.Amount) || entry.Amount < 0 {
				return fmt.Errorf("%w: custom prepayment amount for period %d must be a non-negative number, got %v",
					ErrInvalidArgument, entry.Period, entry.Amount)
			}
		}
	default:
		return fmt.Errorf("%w: unknown prepayment frequency %d", ErrInvalidArgument, int(p.Frequency))
	}
	return nil
}

// Request holds the parameters of a single amortization computation.
type Request struct {
	Principal         float64
	AnnualRatePercent float64
	TenureMonths      int
	MoratoriumMonths  int
	MoratoriumMode    MoratoriumMode
	Prepayment        *Prepayment
}

// Validate reports the first out-of-domain field, wrapped in ErrInvalidArgument.
func (r Request) Validate() error {
	if !mathutil.IsFinite(r.Principal) || r.Principal <= 0 {
		return fmt.Errorf("%w: principal must be a positive number, got %v", ErrInvalidArgument, r.Principal)
	}
	if !mathutil.IsFinite(r.AnnualRatePercent) || r.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: annual rate must be a non-negative number, got %v", ErrInvalidArgument, r.AnnualRatePercent)
	}
	if r.TenureMonths <= 0 {
		return fmt.Errorf("%w: tenure must be at least one month, got %d", ErrInvalidArgument, r.TenureMonths)
	}
	if r.MoratoriumMonths < 0 {
		return fmt.Errorf("%w: moratorium months must not be negative, got %d", ErrInvalidArgument, r.MoratoriumMonths)
	}
	if _, ok := moratoriumModeNames[r.MoratoriumMode]; !ok {
		return fmt.Errorf("%w: unknown moratorium mode %d", ErrInvalidArgument, int(r.MoratoriumMode))
	}
	return r.Prepayment.validate()
}

// ActiveMoratorium is the moratorium length after clamping so that at least
// one repayment period remains.
func (r Request) ActiveMoratorium() int {
	return max(0, min(r.MoratoriumMonths, r.TenureMonths-1))
}
