package pipeline

import (
	"strings"

	"indicator-engine/internal/config"
	"indicator-engine/internal/domain"
)

// isExempt reports whether a record is excluded from normalization by
// configuration. Name and category matching is case-insensitive.
func isExempt(rec domain.IndicatorRecord, ex config.Exemptions) bool {
	for _, id := range ex.IndicatorIDs {
		if id == rec.ID {
			return true
		}
	}
	for _, name := range ex.IndicatorNames {
		if strings.EqualFold(name, rec.Name) {
			return true
		}
	}
	for _, group := range ex.CategoryGroups {
		if strings.EqualFold(group, rec.CategoryGroup) {
			return true
		}
	}
	return false
}

// sourceMagnitude finds the reported magnitude of a record: the explicit
// scale field wins, otherwise a magnitude word embedded in the unit
// ("KRW Trillion"). Records without either report ones.
func sourceMagnitude(rec domain.IndicatorRecord) domain.Magnitude {
	if m, ok := domain.ParseMagnitude(rec.Scale); ok {
		return m
	}
	for _, tok := range strings.Fields(rec.Unit) {
		if m, ok := domain.ParseMagnitude(tok); ok {
			return m
		}
	}
	return domain.MagnitudeOnes
}

// monetaryUnit builds the canonical unit string for an absolute monetary
// amount, e.g. "USD Million".
func monetaryUnit(currency string, mag domain.Magnitude) string {
	if label := mag.Label(); label != "" {
		return currency + " " + label
	}
	return currency
}

// rewriteUnitCurrency swaps the currency token inside a per-unit price,
// "EUR/MWh" → "USD/MWh", preserving the rest of the unit text.
func rewriteUnitCurrency(unit, from, to string) string {
	fields := strings.FieldsFunc(unit, func(r rune) bool { return r == ' ' || r == '/' })
	out := unit
	for _, f := range fields {
		if strings.EqualFold(f, from) {
			out = strings.Replace(out, f, to, 1)
			break
		}
	}
	return out
}

// isWageLike reports whether the indicator is a wage, for which the
// hourly full-time-equivalent convention applies.
func isWageLike(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range []string{"wage", "salary", "salaries", "earnings", "pay rate", "compensation"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cumulativeAdjust detects year-to-date cumulative flows from the sample
// series (values climb through the year and reset in January) and returns
// the latest per-period value. Without at least three samples, or without
// the reset pattern, the record's value stands as reported.
func cumulativeAdjust(rec domain.IndicatorRecord) (float64, bool) {
	samples := rec.SampleValues
	if len(samples) < 3 {
		return rec.Value, false
	}

	climbing := 0
	resets := 0
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if cur.Value >= prev.Value {
			climbing++
		} else if cur.Date.Month() == 1 {
			resets++
		} else {
			// A mid-year drop breaks the cumulative pattern.
			return rec.Value, false
		}
	}
	if resets == 0 || climbing == 0 {
		return rec.Value, false
	}

	last := samples[len(samples)-1]
	prev := samples[len(samples)-2]
	if last.Date.Month() == 1 {
		// January observation is already a per-period value.
		return last.Value, true
	}
	return last.Value - prev.Value, true
}

// peerCheck flags items whose bucket disagrees with the majority of their
// category group. Groups need at least three classified members before a
// majority is meaningful.
func peerCheck(items []*workItem) {
	groups := make(map[string][]*workItem)
	for _, it := range items {
		if it.exempt || it.failure != nil || it.rec.CategoryGroup == "" {
			continue
		}
		key := strings.ToLower(it.rec.CategoryGroup)
		groups[key] = append(groups[key], it)
	}

	for _, members := range groups {
		if len(members) < 3 {
			continue
		}
		counts := make(map[domain.Bucket]int)
		for _, it := range members {
			counts[it.bucket]++
		}
		var majority domain.Bucket
		best := 0
		for b, n := range counts {
			if n > best || (n == best && b < majority) {
				majority, best = b, n
			}
		}
		if best*2 <= len(members) {
			// No strict majority, nothing to flag against.
			continue
		}
		for _, it := range members {
			if it.bucket != majority {
				it.mismatch = true
			}
		}
	}
}
