package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/emi-calc/pkg/amortization"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestToRequest(t *testing.T) {
	tests := []struct {
		name    string
		loan    Loan
		want    amortization.Request
		wantErr bool
	}{
		{
			name: "Plain loan",
			loan: Loan{Principal: 500000, AnnualRatePercent: 9.5, TenureMonths: 240},
			want: amortization.Request{Principal: 500000, AnnualRatePercent: 9.5, TenureMonths: 240},
		},
		{
			name: "Tenure in years",
			loan: Loan{Principal: 100000, AnnualRatePercent: 8, TenureYears: 3},
			want: amortization.Request{Principal: 100000, AnnualRatePercent: 8, TenureMonths: 36},
		},
		{
			name: "Months take precedence over years",
			loan: Loan{Principal: 100000, AnnualRatePercent: 8, TenureMonths: 30, TenureYears: 3},
			want: amortization.Request{Principal: 100000, AnnualRatePercent: 8, TenureMonths: 30},
		},
		{
			name: "Compound moratorium",
			loan: Loan{Principal: 1, TenureMonths: 12, Moratorium: Moratorium{Months: 6, Mode: "capitalize-compound"}},
			want: amortization.Request{
				Principal:        1,
				TenureMonths:     12,
				MoratoriumMonths: 6,
				MoratoriumMode:   amortization.CapitalizeCompound,
			},
		},
		{
			name:    "Unknown moratorium mode",
			loan:    Loan{Principal: 1, TenureMonths: 12, Moratorium: Moratorium{Months: 6, Mode: "forgive"}},
			wantErr: true,
		},
		{
			name:    "Unknown prepayment frequency",
			loan:    Loan{Principal: 1, TenureMonths: 12, Prepayment: &Prepayment{Frequency: "weekly", Amount: 5}},
			wantErr: true,
		},
		{
			name:    "Custom prepayment without entries",
			loan:    Loan{Principal: 1, TenureMonths: 12, Prepayment: &Prepayment{Frequency: "custom"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loan.ToRequest()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, amortization.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if got.Principal != tt.want.Principal || got.AnnualRatePercent != tt.want.AnnualRatePercent ||
				got.TenureMonths != tt.want.TenureMonths || got.MoratoriumMonths != tt.want.MoratoriumMonths ||
				got.MoratoriumMode != tt.want.MoratoriumMode || got.Prepayment != nil {
				t.Errorf("ToRequest() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestToRequestCustomPrepayment(t *testing.T) {
	loan := Loan{
		Principal:    100000,
		TenureMonths: 24,
		Prepayment: &Prepayment{
			Frequency: "custom",
			Entries:   []PrepaymentEntry{{Period: 6, Amount: 1000}, {Period: 6, Amount: 2000}},
		},
	}

	req, err := loan.ToRequest()
	if err != nil {
		t.Fatalf("ToRequest() error = %v", err)
	}
	if req.Prepayment == nil || req.Prepayment.Frequency != amortization.PrepayCustom {
		t.Fatalf("expected custom prepayment, got %+v", req.Prepayment)
	}
	if got := req.Prepayment.Extra(6); got != 3000 {
		t.Errorf("Extra(6) = %v, expected 3000", got)
	}
}

func TestProcessLoans(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	core, logs := observer.New(zap.DebugLevel)
	results, err := conf.ProcessLoans(zap.New(core))
	if err != nil {
		t.Fatalf("ProcessLoans() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	home, prepaid, education := results[0], results[1], results[2]
	if len(home.Result.Schedule) != 240 {
		t.Errorf("home loan schedule length = %d, expected 240", len(home.Result.Schedule))
	}
	if len(prepaid.Result.Schedule) >= 240 {
		t.Errorf("prepaid loan should close early, schedule length = %d", len(prepaid.Result.Schedule))
	}
	if prepaid.Result.TotalInterest >= home.Result.TotalInterest {
		t.Errorf("prepaid loan interest %.2f should be below %.2f",
			prepaid.Result.TotalInterest, home.Result.TotalInterest)
	}
	if !education.Result.MoratoriumApplied {
		t.Errorf("education loan should apply its moratorium")
	}
	if education.Request.MoratoriumMode != amortization.CapitalizeSimple {
		t.Errorf("education loan mode = %v", education.Request.MoratoriumMode)
	}

	if logs.FilterMessage("processed loans").Len() != 1 {
		t.Errorf("expected one summary log line")
	}
	if logs.FilterField(zap.String("op", "config.ProcessLoans")).Len() < 4 {
		t.Errorf("expected per-loan debug logs, got %d entries", logs.Len())
	}
}

func TestProcessLoansWarnings(t *testing.T) {
	conf := Configuration{
		Loans: []Loan{{Principal: 10000, AnnualRatePercent: 10, TenureMonths: 6, Moratorium: Moratorium{Months: 9}}},
	}

	core, logs := observer.New(zap.WarnLevel)
	results, err := conf.ProcessLoans(zap.New(core))
	if err != nil {
		t.Fatalf("ProcessLoans() error = %v", err)
	}
	if results[0].Name != "loan 1" {
		t.Errorf("Name = %s, expected positional name", results[0].Name)
	}
	if len(results[0].Warnings) != 1 || logs.Len() != 1 {
		t.Errorf("expected one clamped-moratorium warning, got %v", results[0].Warnings)
	}
}

func TestProcessLoansInvalid(t *testing.T) {
	conf := Configuration{Loans: []Loan{{Name: "broken", Principal: -5, TenureMonths: 12}}}

	_, err := conf.ProcessLoans(nil)
	if err == nil {
		t.Fatal("expected error for negative principal")
	}
	if !errors.Is(err, amortization.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestProcessComparisons(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	conf.Comparisons = append(conf.Comparisons, Comparison{First: "home loan", Second: "missing"})

	results, err := conf.ProcessComparisons(zap.NewNop())
	if err != nil {
		t.Fatalf("ProcessComparisons() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected unknown comparison to be skipped, got %d results", len(results))
	}

	cmp := results[0].Comparison
	if cmp.Second.MoratoriumApplied {
		t.Errorf("comparisons should ignore moratorium")
	}
	if len(cmp.Second.Schedule) != 120 {
		t.Errorf("education loan compared as plain loan should run 120 periods, got %d", len(cmp.Second.Schedule))
	}
}

func TestProcessEligibility(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	conf.Eligibility = append(conf.Eligibility, EligibilityCheck{
		MonthlyIncome:        50000,
		ExistingObligations:  30000,
		MaxObligationPercent: 40,
		AnnualRatePercent:    9.5,
		TenureMonths:         120,
	})

	core, logs := observer.New(zap.DebugLevel)
	results, err := conf.ProcessEligibility(zap.New(core))
	if err != nil {
		t.Fatalf("ProcessEligibility() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	salaried := results[0]
	if salaried.Name != "salaried applicant" || salaried.Check.Tenure() != 240 {
		t.Errorf("unexpected check %s with tenure %d", salaried.Name, salaried.Check.Tenure())
	}
	if salaried.Eligibility.AffordablePayment != 35000 {
		t.Errorf("AffordablePayment = %v, expected 35000", salaried.Eligibility.AffordablePayment)
	}
	if got := amortization.LevelPayment(salaried.Eligibility.MaxPrincipal, 9.5, 240); got < 34999.99 || got > 35000.01 {
		t.Errorf("EMI on the maximum principal = %.2f, expected 35000", got)
	}

	stretched := results[1]
	if stretched.Name != "eligibility 2" {
		t.Errorf("Name = %s, expected positional name", stretched.Name)
	}
	if stretched.Eligibility.MaxPrincipal != 0 {
		t.Errorf("MaxPrincipal = %v, expected 0 when obligations exceed the limit", stretched.Eligibility.MaxPrincipal)
	}
	if logs.FilterField(zap.String("op", "config.ProcessEligibility")).FilterMessageSnippet("no room").Len() != 1 {
		t.Errorf("expected a warning for the over-committed applicant")
	}
}

func TestProcessEligibilityInvalid(t *testing.T) {
	conf := Configuration{Eligibility: []EligibilityCheck{{
		Name:                 "greedy",
		MonthlyIncome:        100000,
		MaxObligationPercent: 150,
		AnnualRatePercent:    9.5,
		TenureMonths:         240,
	}}}

	_, err := conf.ProcessEligibility(nil)
	if !errors.Is(err, amortization.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), "eligibility greedy") {
		t.Errorf("error should name the check, got %v", err)
	}
}
