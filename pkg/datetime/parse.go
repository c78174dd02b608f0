// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/emi-calc/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// PeriodLabel returns the calendar month (YYYY-MM) on which the given 1-based
// schedule period falls when the first period is due in startMonth.
func PeriodLabel(startMonth string, period int) (string, error) {
	if period < 1 {
		return "", fmt.Errorf("period must be at least 1, got %d", period)
	}
	return OffsetDate(startMonth, DateTimeLayout, period-1)
}

// PeriodLabels returns the labels for periods 1..count.
func PeriodLabels(startMonth string, count int) ([]string, error) {
	start, err := time.Parse(DateTimeLayout, startMonth)
	if err != nil {
		return nil, err
	}
	labels := make([]string, count)
	for i := range labels {
		labels[i] = start.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return labels, nil
}

// CurrentMonth returns the month containing now in DateTimeLayout.
func CurrentMonth(now time.Time) string {
	return now.Format(DateTimeLayout)
}
