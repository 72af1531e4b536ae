package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round returns the amount rounded half-up to cents. The engine keeps raw
// float64 amounts internally; rounding happens only at presentation edges.
func Round(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// Format renders the amount with exactly two decimal places.
// decimal.NewFromFloat panics on NaN and Inf, so those render as 0.00.
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}
