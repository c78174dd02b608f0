package config

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/amortization"
	"go.uber.org/zap"
)

// EligibilityCheck asks how large a loan an income supports.
type EligibilityCheck struct {
	Name                 string  `yaml:"name"`
	MonthlyIncome        float64 `yaml:"monthlyIncome"`
	ExistingObligations  float64 `yaml:"existingObligations,omitempty"`
	MaxObligationPercent float64 `yaml:"maxObligationPercent"` // FOIR limit
	AnnualRatePercent    float64 `yaml:"annualRatePercent"`
	TenureMonths         int     `yaml:"tenureMonths,omitempty"`
	TenureYears          int     `yaml:"tenureYears,omitempty"`
}

// EligibilityResult pairs a configured check with its estimate.
type EligibilityResult struct {
	Name        string
	Check       EligibilityCheck
	Eligibility amortization.Eligibility
}

// DisplayName returns the check name, or a positional name when unset.
func (check *EligibilityCheck) DisplayName(index int) string {
	if check.Name != "" {
		return check.Name
	}
	return fmt.Sprintf("eligibility %d", index+1)
}

// ProcessEligibility estimates the maximum principal for every configured
// eligibility check.
func (conf *Configuration) ProcessEligibility(logger *zap.Logger) ([]EligibilityResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]EligibilityResult, 0, len(conf.Eligibility))
	for i := range conf.Eligibility {
		check := conf.Eligibility[i]
		name := check.DisplayName(i)

		eligibility, err := amortization.EstimateEligibility(
			check.MonthlyIncome,
			check.ExistingObligations,
			check.MaxObligationPercent,
			check.AnnualRatePercent,
			check.Tenure(),
		)
		if err != nil {
			return nil, fmt.Errorf("eligibility %s: %w", name, err)
		}

		if eligibility.AffordablePayment == 0 {
			logger.Warn(fmt.Sprintf("existing obligations leave no room for a new EMI in %s", name),
				zap.String("op", "config.ProcessEligibility"),
				zap.Float64("obligation_percent", eligibility.ObligationPercent),
			)
		}
		logger.Debug(fmt.Sprintf("estimated eligibility for %s", name),
			zap.String("op", "config.ProcessEligibility"),
			zap.Float64("affordable_payment", eligibility.AffordablePayment),
			zap.Float64("max_principal", eligibility.MaxPrincipal),
		)

		results = append(results, EligibilityResult{Name: name, Check: check, Eligibility: eligibility})
	}
	return results, nil
}
