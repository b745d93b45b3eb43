package utils

import (
	"fmt"
	"math"
)

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FormatAmount renders a monetary value with its currency symbol for
// display, e.g. "Bs 157.30". Core computations keep full precision; this
// is for the rendering edge only.
func FormatAmount(symbol string, x float64) string {
	return fmt.Sprintf("%s %.2f", symbol, Round2(x))
}
