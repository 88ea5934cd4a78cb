// Package format renders projection figures for display. Values are rounded
// to cents here and nowhere earlier.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/freedom-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

// Fixed returns the amount rounded to cents without separators (e.g., "-1234.56").
// Infinite and NaN amounts are rendered as "+Inf", "-Inf" and "NaN".
func Fixed(amount float64) string {
	if !finite(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(constants.DecimalPlaces)
}

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if !finite(amount) {
		return Fixed(amount)
	}
	sign, formatted := splitSign(Fixed(amount))
	return sign + "$" + groupThousands(formatted)
}

func finite(amount float64) bool {
	return !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

func splitSign(fixed string) (string, string) {
	if strings.HasPrefix(fixed, "-") {
		return "-", fixed[1:]
	}
	return "", fixed
}

func groupThousands(value string) string {
	parts := strings.SplitN(value, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
