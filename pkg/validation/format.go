// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/emi-calc/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateGrouping checks if the digit grouping style is supported. An empty
// style is allowed and means "derive from locale".
func ValidateGrouping(style string) error {
	switch style {
	case "", constants.GroupingWestern, constants.GroupingIndian:
		return nil
	}
	return fmt.Errorf("expected grouping of %s or %s, got %s",
		constants.GroupingWestern, constants.GroupingIndian, style)
}
