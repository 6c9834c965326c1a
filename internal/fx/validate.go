package fx

import (
	"fmt"
	"sort"
	"strings"

	"indicator-engine/internal/domain"
)

// rateRange bounds the plausible per-USD rate for one currency.
type rateRange struct {
	min, max float64
}

// plausibleRanges covers the majors plus the exotics that show up in
// indicator feeds. Bounds are deliberately wide: they exist to catch
// order-of-magnitude feed defects, not market moves.
var plausibleRanges = map[string]rateRange{
	"EUR": {0.80, 1.20},
	"GBP": {0.60, 1.00},
	"CHF": {0.80, 1.10},
	"CAD": {1.20, 1.60},
	"AUD": {1.30, 1.80},
	"NZD": {1.40, 1.90},
	"JPY": {100, 170},
	"CNY": {6.0, 8.0},
	"INR": {65, 95},
	"KRW": {900, 1600},
	"BRL": {3.5, 6.5},
	"MXN": {15, 25},
	"RUB": {55, 130},
	"TRY": {5, 50},
	"ZAR": {12, 22},
	"SEK": {8, 12},
	"NOK": {8, 12},
	"NGN": {300, 1800},
	"ARS": {50, 1500},
	"IDR": {13000, 17000},
	"VND": {22000, 27000},
	"XOF": {450, 700},
	"XAF": {450, 700},
}

// hardDefectMultiplier separates a data defect from a market move: a rate
// more than 10x outside its plausible range is an error, anything closer
// is a warning.
const hardDefectMultiplier = 10

// Severity of a rate issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// RateIssue describes one problem found in a rate table.
type RateIssue struct {
	Currency string
	Rate     float64
	Severity Severity
	Message  string
}

// ValidationResult is the outcome of checking a whole table.
type ValidationResult struct {
	IsValid  bool
	Warnings []RateIssue
	Errors   []RateIssue
}

// Validate sanity-checks every rate in the table against the plausible
// ranges. The base itself is implicitly 1.0 and never checked. Currencies
// without a known range get only coarse checks: reject non-positive rates,
// flag rates below 0.001 or above 100000 as suspicious.
func Validate(table domain.FXTable) ValidationResult {
	res := ValidationResult{IsValid: true}
	base := strings.ToUpper(table.Base)

	for _, code := range sortedCodes(table.Rates) {
		if strings.ToUpper(code) == base {
			continue
		}
		rate := table.Rates[code]
		if issue, ok := checkRate(code, rate); ok {
			if issue.Severity == SeverityError {
				res.Errors = append(res.Errors, issue)
				res.IsValid = false
			} else {
				res.Warnings = append(res.Warnings, issue)
			}
		}
	}
	return res
}

func checkRate(code string, rate float64) (RateIssue, bool) {
	if rate <= 0 {
		return RateIssue{
			Currency: code,
			Rate:     rate,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s: rate %v is zero or negative", code, rate),
		}, true
	}

	rng, known := plausibleRanges[strings.ToUpper(code)]
	if !known {
		if rate < 0.001 || rate > 100000 {
			return RateIssue{
				Currency: code,
				Rate:     rate,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s: rate %v is suspicious for an unknown currency", code, rate),
			}, true
		}
		return RateIssue{}, false
	}

	switch {
	case rate < rng.min:
		mult := rng.min / rate
		if mult > hardDefectMultiplier {
			return RateIssue{
				Currency: code,
				Rate:     rate,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s: rate %v is %.0fx below plausible range [%v, %v], likely scale defect", code, rate, mult, rng.min, rng.max),
			}, true
		}
		return RateIssue{
			Currency: code,
			Rate:     rate,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s: rate %v is below plausible range [%v, %v]", code, rate, rng.min, rng.max),
		}, true
	case rate > rng.max:
		mult := rate / rng.max
		if mult > hardDefectMultiplier {
			return RateIssue{
				Currency: code,
				Rate:     rate,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s: rate %v is %.0fx above plausible range [%v, %v], likely scale defect", code, rate, mult, rng.min, rng.max),
			}, true
		}
		return RateIssue{
			Currency: code,
			Rate:     rate,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s: rate %v is above plausible range [%v, %v]", code, rate, rng.min, rng.max),
		}, true
	}
	return RateIssue{}, false
}

// SuggestCorrection proposes a repaired rate for a currency flagged by
// Validate. Rates far too low are probed at x10, x100, x1000 and the first
// product landing inside the known range wins; rates far too high probe
// the inverse. When no power-of-ten correction fits, the range midpoint is
// returned. Unknown currencies report ok=false: there is no range to land
// in.
func SuggestCorrection(currency string, wrongRate float64) (float64, bool) {
	rng, known := plausibleRanges[strings.ToUpper(currency)]
	if !known {
		return 0, false
	}
	mid := (rng.min + rng.max) / 2
	if wrongRate <= 0 {
		return mid, true
	}
	if wrongRate >= rng.min && wrongRate <= rng.max {
		return wrongRate, true
	}

	factors := []float64{10, 100, 1000}
	if wrongRate < rng.min {
		for _, f := range factors {
			if c := wrongRate * f; c >= rng.min && c <= rng.max {
				return c, true
			}
		}
		return mid, true
	}
	for _, f := range factors {
		if c := wrongRate / f; c >= rng.min && c <= rng.max {
			return c, true
		}
	}
	return mid, true
}

// ValidateAndCorrect validates the table and, when autoCorrect is set and
// problems exist, applies SuggestCorrection to every flagged currency.
// The input table is never mutated. The returned corrections are the audit
// trail; callers must surface them, never discard them.
func ValidateAndCorrect(table domain.FXTable, autoCorrect bool) (domain.FXTable, []domain.RateCorrection, ValidationResult) {
	res := Validate(table)
	if !autoCorrect || res.IsValid {
		return table, nil, res
	}

	corrected := domain.FXTable{
		Base:  table.Base,
		Rates: make(map[string]float64, len(table.Rates)),
	}
	for code, rate := range table.Rates {
		corrected.Rates[code] = rate
	}

	var corrections []domain.RateCorrection
	for _, issue := range res.Errors {
		fixed, ok := SuggestCorrection(issue.Currency, issue.Rate)
		if !ok || fixed == issue.Rate {
			continue
		}
		corrected.Rates[issue.Currency] = fixed
		corrections = append(corrections, domain.RateCorrection{
			Currency:  issue.Currency,
			Original:  issue.Rate,
			Corrected: fixed,
		})
	}
	return corrected, corrections, res
}

// sortedCodes keeps validation output deterministic.
func sortedCodes(rates map[string]float64) []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
