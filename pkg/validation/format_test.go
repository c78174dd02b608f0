package validation

import (
	"testing"

	"github.com/iwvelando/emi-calc/pkg/constants"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{constants.OutputFormatPretty, false},
		{constants.OutputFormatCSV, false},
		{"json", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if err := ValidateOutputFormat(tt.format); (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGrouping(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"", false},
		{constants.GroupingWestern, false},
		{constants.GroupingIndian, false},
		{"chinese", true},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			if err := ValidateGrouping(tt.style); (err != nil) != tt.wantErr {
				t.Errorf("ValidateGrouping(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
			}
		})
	}
}
