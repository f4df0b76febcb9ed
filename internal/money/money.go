// Package money holds the rounding law shared by every commission amount.
//
// Amounts travel through the engine as float64 and are rounded with Round2
// after every arithmetic step. The exact decimal helpers form a parallel path
// used to detect drift; they never replace the legacy result.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Epsilon is the gap between 1 and the next representable float64.
var Epsilon = math.Nextafter(1, 2) - 1

var hundred = decimal.NewFromInt(100)

// Round2 rounds to 2 decimal places: round((x + ε) × 100) / 100, where round
// sends halves toward +∞.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return roundHalfUp((x+Epsilon)*100) / 100
}

func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// Percent returns round2(base × rate / 100).
func Percent(base, rate float64) float64 {
	return Round2(base * rate / 100)
}

// ToMoney formats an amount with exactly two decimals for reporting.
func ToMoney(x float64) string {
	return decimal.NewFromFloat(Round2(x)).StringFixed(2)
}

// FromDecimal converts a stored decimal into the engine representation.
func FromDecimal(d decimal.Decimal) float64 {
	return Round2(d.InexactFloat64())
}

// ToDecimal converts an engine amount into a 2-place decimal for storage.
func ToDecimal(x float64) decimal.Decimal {
	return decimal.NewFromFloat(Round2(x)).Round(2)
}

// Exact is the exact-decimal rendition of an engine amount.
type Exact = decimal.Decimal

// ExactPercent computes base × rate / 100 on decimals, rounded half up to 2 places.
func ExactPercent(base, rate float64) Exact {
	return decimal.NewFromFloat(base).Mul(decimal.NewFromFloat(rate)).Div(hundred).Round(2)
}

// ExactNet computes gross − clawback − advance on decimals.
func ExactNet(gross, clawback, advance float64) Exact {
	return decimal.NewFromFloat(gross).
		Sub(decimal.NewFromFloat(clawback)).
		Sub(decimal.NewFromFloat(advance)).
		Round(2)
}

// Diverges reports whether the legacy amount differs from its exact counterpart.
func Diverges(legacy float64, exact Exact) bool {
	return !decimal.NewFromFloat(Round2(legacy)).Round(2).Equal(exact)
}
