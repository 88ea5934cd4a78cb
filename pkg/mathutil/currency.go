// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/freedom-forecast/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons, never inside the projection itself.
func Round(val float64) float64 {
	scale := math.Pow10(constants.DecimalPlaces)
	return math.Round(val*scale) / scale
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentToFraction converts a percentage such as 7 into the fraction 0.07.
func PercentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// FractionToPercent converts a fraction such as 0.07 into the percentage 7.
func FractionToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
