package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxAmount caps every dollar input. It is far above any Houston listing and
// keeps products of amounts and rates well inside float64 range.
const MaxAmount = 1e9

// roundCents rounds a dollar amount half away from zero to two decimals.
// Rounding goes through decimal so 112.495 style binary artifacts don't
// flip the last cent, and -0 never leaks into a result.
func roundCents(value float64) float64 {
	return roundTo(value, 2)
}

// roundThousand rounds to the nearest 1000, used for value ranges.
func roundThousand(value float64) float64 {
	f := math.Round(value/1000) * 1000
	if f == 0 {
		return 0
	}
	return f
}

// sumCents adds already-rounded amounts and rounds the result again to
// drop accumulated float noise.
func sumCents(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f := total.Round(2).InexactFloat64()
	if f == 0 {
		return 0
	}
	return f
}

func roundTo(value float64, places int32) float64 {
	f := decimal.NewFromFloat(value).Round(places).InexactFloat64()
	if f == 0 {
		return 0
	}
	return f
}
