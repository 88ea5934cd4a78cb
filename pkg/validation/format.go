// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/freedom-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateDecreaseType checks a contribution decrease type. An empty value is
// accepted and means no decrease.
func ValidateDecreaseType(decreaseType string) error {
	switch strings.ToLower(strings.TrimSpace(decreaseType)) {
	case "", constants.DecreaseTypeNone, constants.DecreaseTypeFixed, constants.DecreaseTypePercent:
		return nil
	}
	return fmt.Errorf("expected contribution decrease type of %s, %s or %s, got %s",
		constants.DecreaseTypeNone, constants.DecreaseTypeFixed, constants.DecreaseTypePercent, decreaseType)
}

// ValidateCompoundingFrequency checks that growth is applied annually or monthly.
func ValidateCompoundingFrequency(frequency int) error {
	if frequency != constants.AnnualCompounding && frequency != constants.MonthlyCompounding {
		return fmt.Errorf("expected compounding frequency of %d or %d, got %d",
			constants.AnnualCompounding, constants.MonthlyCompounding, frequency)
	}
	return nil
}
