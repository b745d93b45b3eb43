package invoice

import (
	"strconv"
	"strings"
)

// DefaultTaxRate applies when the raw tax-rate input is absent or not a
// number.
const DefaultTaxRate = 13.0

// Totals is the derived money view of a list of items. Values keep full
// precision; rounding to two decimals is the renderer's job.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
	ConvertedTotal float64 `json:"converted_total"`
	Currency       string  `json:"currency"`
	TaxRatePercent float64 `json:"tax_rate_percent"`
}

// ClampTaxRate forces a percentage into [0, 100].
func ClampTaxRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// ParseTaxRate turns raw user input into a usable percentage: absent or
// unparsable text falls back to DefaultTaxRate, anything else is clamped.
func ParseTaxRate(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTaxRate
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultTaxRate
	}
	return ClampTaxRate(v)
}

// ComputeTotals derives subtotal, tax, total and the converted total for
// the given currency. Pure: it never touches stored state. The subtotal is
// accumulated in list order so rounding stays deterministic.
func ComputeTotals(items []LineItem, taxRatePercent float64, currencyCode string) (Totals, error) {
	cur, err := CurrencyByCode(currencyCode)
	if err != nil {
		return Totals{}, err
	}

	rate := ClampTaxRate(taxRatePercent)
	var subtotal float64
	for _, it := range items {
		subtotal += it.Quantity * it.UnitPrice
	}
	tax := subtotal * rate / 100
	total := subtotal + tax

	return Totals{
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		ConvertedTotal: total * cur.Rate,
		Currency:       cur.Code,
		TaxRatePercent: rate,
	}, nil
}
