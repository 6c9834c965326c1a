package domain

// IndicatorRecord is a raw economic indicator as received from upstream.
// Records are immutable inputs: normalization never mutates one in place,
// it produces a derived NormalizedRecord instead.
type IndicatorRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Unit          string        `json:"unit"`                    // raw free-text unit, e.g. "KRW Trillion", "EUR/MWh"
	Value         float64       `json:"value"`
	CurrencyCode  string        `json:"currencyCode,omitempty"`  // optional explicit ISO-4217-style code
	Periodicity   string        `json:"periodicity,omitempty"`   // optional reporting period, e.g. "Monthly"
	Scale         string        `json:"scale,omitempty"`         // optional magnitude word, e.g. "Millions"
	CategoryGroup string        `json:"categoryGroup,omitempty"` // peer group for unit-consistency checks
	SampleValues  []SeriesPoint `json:"sampleValues,omitempty"`  // optional recent observations, ordered by date
}

// Explain carries the diagnostics attached to a normalized record.
type Explain struct {
	Domain   Bucket   `json:"domain"`
	Currency string   `json:"currency,omitempty"` // source currency when conversion applied
	FXRate   float64  `json:"fxRate,omitempty"`   // effective source→target rate
	FXSource string   `json:"fxSource,omitempty"` // base currency of the table used
	Warnings []string `json:"warnings,omitempty"`
}

// NormalizedRecord is the derived output of one pipeline pass over a record.
type NormalizedRecord struct {
	IndicatorRecord

	Bucket          Bucket  `json:"bucket"`
	NormalizedValue float64 `json:"normalizedValue"`
	NormalizedUnit  string  `json:"normalizedUnit"`
	Explain         Explain `json:"explain"`
}
