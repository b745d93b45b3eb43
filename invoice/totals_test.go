package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsWidget(t *testing.T) {
	items := []LineItem{{ID: "a", Name: "Widget", Quantity: 2, UnitPrice: 10.00}}

	got, err := ComputeTotals(items, 13, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 20.00, got.Subtotal, 1e-9)
	assert.InDelta(t, 2.60, got.Tax, 1e-9)
	assert.InDelta(t, 22.60, got.Total, 1e-9)
	assert.InDelta(t, 22.60, got.ConvertedTotal, 1e-9)
	assert.Equal(t, "USD", got.Currency)

	// switching currency converts the total without changing it
	eur, err := ComputeTotals(items, 13, "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 22.60, eur.Total, 1e-9)
	assert.InDelta(t, 20.792, eur.ConvertedTotal, 1e-3)
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	a := []LineItem{
		{ID: "1", Name: "A", Quantity: 3, UnitPrice: 7.25},
		{ID: "2", Name: "B", Quantity: 1.5, UnitPrice: 9.99},
		{ID: "3", Name: "C", Quantity: 10, UnitPrice: 0.01},
	}
	b := []LineItem{a[2], a[0], a[1]}

	ta, err := ComputeTotals(a, 13, "USD")
	require.NoError(t, err)
	tb, err := ComputeTotals(b, 13, "USD")
	require.NoError(t, err)
	assert.InDelta(t, ta.Subtotal, tb.Subtotal, 1e-9)
	assert.InDelta(t, 21.75+14.985+0.1, ta.Subtotal, 1e-9)
}

func TestComputeTotalsUnknownCurrency(t *testing.T) {
	_, err := ComputeTotals(nil, 13, "XXX")
	var uce *UnknownCurrencyError
	require.ErrorAs(t, err, &uce)
	assert.Equal(t, "XXX", uce.Code)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	got, err := ComputeTotals(nil, 13, "BOB")
	require.NoError(t, err)
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Tax)
	assert.Zero(t, got.ConvertedTotal)
}

func TestParseTaxRate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"absent defaults", "", 13},
		{"whitespace defaults", "   ", 13},
		{"non-numeric defaults", "abc", 13},
		{"negative clamps to zero", "-5", 0},
		{"above hundred clamps", "150", 100},
		{"plain value", "21", 21},
		{"decimal value", "12.5", 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTaxRate(tt.raw))
		})
	}
}

func TestComputeTotalsClampsRate(t *testing.T) {
	items := []LineItem{{ID: "a", Name: "Widget", Quantity: 1, UnitPrice: 100}}

	low, err := ComputeTotals(items, -5, "USD")
	require.NoError(t, err)
	assert.Zero(t, low.Tax)
	assert.Equal(t, 0.0, low.TaxRatePercent)

	high, err := ComputeTotals(items, 150, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, high.Tax, 1e-9)
	assert.Equal(t, 100.0, high.TaxRatePercent)
}

func TestCurrencySetClosed(t *testing.T) {
	for _, c := range Currencies() {
		assert.NotEmpty(t, c.Symbol, c.Code)
		assert.Greater(t, c.Rate, 0.0, c.Code)
	}
	usd, err := CurrencyByCode("USD")
	require.NoError(t, err)
	assert.Equal(t, 1.0, usd.Rate)
}
