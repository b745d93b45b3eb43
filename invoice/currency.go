package invoice

// Currency is one entry of the closed currency set. Rate is the exchange
// rate relative to USD (rate for USD itself is 1).
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

// The supported set is fixed at process start; every code has both a rate
// and a display symbol.
var currencies = []Currency{
	{Code: "USD", Symbol: "$", Rate: 1},
	{Code: "EUR", Symbol: "€", Rate: 0.92},
	{Code: "BOB", Symbol: "Bs", Rate: 6.96},
}

// Currencies returns the configured currency set in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// CurrencyByCode resolves a code against the configured set.
func CurrencyByCode(code string) (Currency, error) {
	for _, c := range currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, &UnknownCurrencyError{Code: code}
}
