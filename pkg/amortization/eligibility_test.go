package amortization_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwvelando/emi-calc/pkg/amortization"
)

func TestAffordablePayment(t *testing.T) {
	tests := []struct {
		name        string
		income      float64
		obligations float64
		limit       float64
		expected    float64
		wantErr     bool
	}{
		{"Half of income with existing EMI", 100000, 15000, 50, 35000, false},
		{"Obligations exceed limit", 100000, 60000, 50, 0, false},
		{"No income", 0, 0, 50, 0, false},
		{"Limit above 100 percent", 100000, 0, 120, 0, true},
		{"Negative income", -1, 0, 50, 0, true},
		{"Negative obligations", 100000, -5, 50, 0, true},
		{"NaN limit", 100000, 0, math.NaN(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := amortization.AffordablePayment(tt.income, tt.obligations, tt.limit)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, amortization.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMaxPrincipal(t *testing.T) {
	payment := amortization.LevelPayment(500000, 9.5, 240)
	principal, err := amortization.MaxPrincipal(payment, 9.5, 240)
	require.NoError(t, err)
	assert.InDelta(t, 500000, principal, 1e-4)

	principal, err = amortization.MaxPrincipal(1000, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 12000.0, principal)

	principal, err = amortization.MaxPrincipal(0, 9.5, 12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, principal)
}

func TestMaxPrincipal_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		payment float64
		rate    float64
		tenure  int
	}{
		{"Negative payment", -1, 9.5, 12},
		{"Infinite payment", math.Inf(1), 9.5, 12},
		{"Negative rate", 1000, -1, 12},
		{"Zero tenure", 1000, 9.5, 0},
		{"Present value overflows", 1e300, 100000, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := amortization.MaxPrincipal(tt.payment, tt.rate, tt.tenure)
			require.Error(t, err)
			assert.True(t, errors.Is(err, amortization.ErrInvalidArgument))
		})
	}
}

func TestEstimateEligibility(t *testing.T) {
	got, err := amortization.EstimateEligibility(100000, 15000, 50, 9.5, 240)
	require.NoError(t, err)
	assert.InDelta(t, 15, got.ObligationPercent, 1e-9)
	assert.InDelta(t, 35000, got.AffordablePayment, 1e-9)
	assert.InDelta(t, 35000, amortization.LevelPayment(got.MaxPrincipal, 9.5, 240), 1e-6)

	got, err = amortization.EstimateEligibility(0, 0, 50, 9.5, 240)
	require.NoError(t, err)
	assert.Zero(t, got.ObligationPercent)
	assert.Zero(t, got.MaxPrincipal)

	_, err = amortization.EstimateEligibility(100000, 0, 50, 9.5, 0)
	assert.True(t, errors.Is(err, amortization.ErrInvalidArgument))

	_, err = amortization.EstimateEligibility(100000, 0, 150, 9.5, 240)
	assert.True(t, errors.Is(err, amortization.ErrInvalidArgument))
}
