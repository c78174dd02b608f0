package datetime

import (
	"testing"
	"time"
)

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
		wantErr  bool
	}{
		{"Add multiple years", "2025-01", 24, "2027-01", false},
		{"Subtract multiple years", "2025-01", -24, "2023-01", false},
		{"Cross year boundary forward", "2025-06", 8, "2026-02", false},
		{"No offset", "2025-06", 0, "2025-06", false},
		{"Invalid date", "2025/06", 1, "2025/06", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OffsetDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if result != tt.expected {
				t.Errorf("OffsetDate() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		period   int
		expected string
		wantErr  bool
	}{
		{"First period is the start month", "2025-01", 1, "2025-01", false},
		{"Twelfth period", "2025-01", 12, "2025-12", false},
		{"Crosses year boundary", "2025-11", 3, "2026-01", false},
		{"Twenty year loan final period", "2025-01", 240, "2044-12", false},
		{"Zero period", "2025-01", 0, "", true},
		{"Bad start month", "Jan 2025", 1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PeriodLabel(tt.start, tt.period)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PeriodLabel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && result != tt.expected {
				t.Errorf("PeriodLabel() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestPeriodLabels(t *testing.T) {
	labels, err := PeriodLabels("2025-11", 4)
	if err != nil {
		t.Fatalf("PeriodLabels() error = %v", err)
	}
	expected := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
	if len(labels) != len(expected) {
		t.Fatalf("PeriodLabels() returned %d labels, expected %d", len(labels), len(expected))
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("label %d = %s, expected %s", i, labels[i], expected[i])
		}
	}

	if _, err := PeriodLabels("bad", 2); err == nil {
		t.Errorf("PeriodLabels() expected error for invalid start month")
	}
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	if got := CurrentMonth(now); got != "2026-10" {
		t.Errorf("CurrentMonth() = %s, expected 2026-10", got)
	}
}
