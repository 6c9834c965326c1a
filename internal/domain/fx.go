package domain

// FXTable holds exchange rates expressed against a single base currency.
// rates[base] is never consulted: the base is implicitly 1.0.
// All rates must be strictly positive.
type FXTable struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"` // currency code → units per base
}

// PricePattern describes how a currency token appears inside a unit string.
type PricePattern string

const (
	PricePatternAbsolute PricePattern = "absolute" // bare amount: "USD Million", "thousand GBP"
	PricePatternPerUnit  PricePattern = "per_unit" // rate-style: "EUR/MWh", "USD per barrel"
	PricePatternNone     PricePattern = "none"     // no recognized currency token
)

// FXDetection is the result of inspecting a unit string for currency content.
// Derived per record, never persisted.
type FXDetection struct {
	NeedsFX      bool         `json:"needsFX"`
	CurrencyCode string       `json:"currencyCode,omitempty"`
	PricePattern PricePattern `json:"pricePattern"`
}

// RateCorrection records one auto-corrected rate for the audit trail.
// Corrections are never applied silently.
type RateCorrection struct {
	Currency  string  `json:"currency"`
	Original  float64 `json:"original"`
	Corrected float64 `json:"corrected"`
}
