package config

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/amortization"
	"github.com/iwvelando/emi-calc/pkg/validation"
	"go.uber.org/zap"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name              string      `yaml:"name"`
	Principal         float64     `yaml:"principal"`
	AnnualRatePercent float64     `yaml:"annualRatePercent"`
	TenureMonths      int         `yaml:"tenureMonths,omitempty"`
	TenureYears       int         `yaml:"tenureYears,omitempty"`
	Moratorium        Moratorium  `yaml:"moratorium,omitempty"`
	Prepayment        *Prepayment `yaml:"prepayment,omitempty"`
}

// Moratorium holds the moratorium settings of a loan.
type Moratorium struct {
	Months int    `yaml:"months,omitempty"`
	Mode   string `yaml:"mode,omitempty"` // pay-monthly, capitalize-simple, capitalize-compound
}

// Prepayment holds the prepayment policy of a loan.
type Prepayment struct {
	Frequency string            `yaml:"frequency"` // monthly, yearly, custom
	Amount    float64           `yaml:"amount,omitempty"`
	Entries   []PrepaymentEntry `yaml:"entries,omitempty"`
}

// PrepaymentEntry is a single custom prepayment.
type PrepaymentEntry struct {
	Period int     `yaml:"period"`
	Amount float64 `yaml:"amount"`
}

// LoanResult pairs a configured loan with its computed schedule.
type LoanResult struct {
	Name     string
	Request  amortization.Request
	Result   amortization.Result
	Warnings []string
}

// ComparisonResult holds a computed comparison of two configured loans.
type ComparisonResult struct {
	First      string
	Second     string
	Comparison amortization.Comparison
}

// DisplayName returns the loan name, or a positional name when unset.
func (loan *Loan) DisplayName(index int) string {
	if loan.Name != "" {
		return loan.Name
	}
	return fmt.Sprintf("loan %d", index+1)
}

// ProcessLoans computes the amortization schedule of every configured loan.
func (conf *Configuration) ProcessLoans(logger *zap.Logger) ([]LoanResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]LoanResult, 0, len(conf.Loans))
	for i := range conf.Loans {
		loan := &conf.Loans[i]
		name := loan.DisplayName(i)

		req, err := loan.ToRequest()
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", name, err)
		}

		warnings := validation.ValidateLoan(name, req)
		for _, warning := range warnings {
			logger.Warn(warning,
				zap.String("op", "config.ProcessLoans"),
			)
		}

		result, err := amortization.Compute(req)
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", name, err)
		}

		logger.Debug(fmt.Sprintf("computed amortization schedule for loan %s", name),
			zap.String("op", "config.ProcessLoans"),
			zap.Float64("periodic_payment", result.PeriodicPayment),
			zap.Float64("total_interest", result.TotalInterest),
			zap.Int("periods", len(result.Schedule)),
			zap.Bool("moratorium_applied", result.MoratoriumApplied),
		)
		if len(result.Schedule) < req.TenureMonths {
			logger.Debug(fmt.Sprintf("loan %s closes %d months early", name, req.TenureMonths-len(result.Schedule)),
				zap.String("op", "config.ProcessLoans"),
			)
		}

		results = append(results, LoanResult{
			Name:     name,
			Request:  req,
			Result:   result,
			Warnings: warnings,
		})
	}

	logger.Info("processed loans",
		zap.String("op", "config.ProcessLoans"),
		zap.Int("loans", len(results)),
	)
	return results, nil
}

// ProcessComparisons computes every configured comparison.
func (conf *Configuration) ProcessComparisons(logger *zap.Logger) ([]ComparisonResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]ComparisonResult, 0, len(conf.Comparisons))
	for _, cmp := range conf.Comparisons {
		first, second := conf.FindLoan(cmp.First), conf.FindLoan(cmp.Second)
		if first == nil || second == nil {
			logger.Warn("skipping comparison with unknown loan",
				zap.String("op", "config.ProcessComparisons"),
				zap.String("first", cmp.First),
				zap.String("second", cmp.Second),
			)
			continue
		}

		a, err := first.ToRequest()
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", cmp.First, err)
		}
		b, err := second.ToRequest()
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", cmp.Second, err)
		}

		comparison, err := amortization.Compare(a, b)
		if err != nil {
			return nil, fmt.Errorf("comparing %s and %s: %w", cmp.First, cmp.Second, err)
		}

		logger.Debug(fmt.Sprintf("compared loans %s and %s", cmp.First, cmp.Second),
			zap.String("op", "config.ProcessComparisons"),
			zap.Float64("total_paid_difference", comparison.TotalPaidDifference),
		)
		results = append(results, ComparisonResult{First: cmp.First, Second: cmp.Second, Comparison: comparison})
	}
	return results, nil
}
