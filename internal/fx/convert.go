// Package fx handles the currency side of normalization: detecting
// currency content in unit strings, converting values through a
// base-currency rate table, and sanity-checking the table itself.
package fx

import (
	"strings"

	"indicator-engine/internal/domain"
)

// Convert converts value from one currency to another via the table's
// base. Identical codes (case-insensitive) return value unchanged with no
// table lookup, so a same-currency pass is lossless.
//
// Triangulation: from → base divides by rates[from], base → to multiplies
// by rates[to]. A required non-base code missing from the table yields
// *MissingRateError; a zero or negative consulted rate yields
// *InvalidRateError.
func Convert(value float64, from, to string, table domain.FXTable) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return value, nil
	}

	base := strings.ToUpper(table.Base)
	out := value

	if from != base {
		rate, ok := lookupRate(table, from)
		if !ok {
			return 0, &MissingRateError{Code: from}
		}
		if rate <= 0 {
			return 0, &InvalidRateError{Code: from, Rate: rate}
		}
		out /= rate
	}

	if to != base {
		rate, ok := lookupRate(table, to)
		if !ok {
			return 0, &MissingRateError{Code: to}
		}
		if rate <= 0 {
			return 0, &InvalidRateError{Code: to, Rate: rate}
		}
		out *= rate
	}

	return out, nil
}

// Rate returns the effective from→to rate implied by the table.
func Rate(from, to string, table domain.FXTable) (float64, error) {
	return Convert(1, from, to, table)
}

// lookupRate is case-insensitive on the table keys.
func lookupRate(table domain.FXTable, code string) (float64, bool) {
	if r, ok := table.Rates[code]; ok {
		return r, true
	}
	for k, r := range table.Rates {
		if strings.EqualFold(k, code) {
			return r, true
		}
	}
	return 0, false
}
