// Package classify assigns a domain bucket to an indicator from its name
// and raw unit string.
package classify

import (
	"strings"

	"indicator-engine/internal/domain"
)

// rule is one predicate/label pair in the ordered rule list.
// Rules are evaluated top to bottom; the first match wins.
type rule struct {
	name  string
	apply func(name, unit string, tokens []string) (domain.Bucket, bool)
}

// rules is the classification decision list, in priority order.
// Rate-style prices must be tested before absolute monetary amounts:
// "EUR/MWh" contains a currency code but is a commodity price, not a
// monetary stock.
var rules = []rule{
	{"crypto-token", matchCrypto},
	{"rate-style-price", matchRatePrice},
	{"monetary-amount", matchMonetary},
	{"percentage", matchPercentage},
	{"index-level", matchIndex},
	{"ratio", matchRatio},
	{"count", matchCount},
}

// Indicator classifies a record into exactly one bucket. Total: records
// matching no rule fall to BucketOther.
func Indicator(rec domain.IndicatorRecord) domain.Bucket {
	bucket, _ := Match(rec)
	return bucket
}

// Match classifies a record and reports which rule decided. An empty rule
// name means no rule matched and the record fell through to BucketOther.
func Match(rec domain.IndicatorRecord) (domain.Bucket, string) {
	name := strings.ToLower(rec.Name)
	unit := strings.ToLower(rec.Unit)
	tokens := unitTokens(unit)

	for _, r := range rules {
		if bucket, ok := r.apply(name, unit, tokens); ok {
			return bucket, r.name
		}
	}
	return domain.BucketOther, ""
}

// unitTokens lower-cases and tokenizes a unit string. Slashes read as
// "per" so that "EUR/MWh" and "EUR per MWh" tokenize identically.
func unitTokens(unit string) []string {
	replaced := strings.NewReplacer("/", " per ", "(", " ", ")", " ", ",", " ", ";", " ").Replace(unit)
	return strings.Fields(replaced)
}

func matchCrypto(_, _ string, tokens []string) (domain.Bucket, bool) {
	for _, tok := range tokens {
		if _, ok := cryptoTokens[tok]; ok {
			return domain.BucketCrypto, true
		}
	}
	return "", false
}

// matchRatePrice recognizes "<currency> per <physical unit>" shapes. The
// match requires a recognized physical unit after the divider, so that
// "USD per capita" still reads as a monetary amount.
func matchRatePrice(name, _ string, tokens []string) (domain.Bucket, bool) {
	for i, tok := range tokens {
		if !domain.IsCurrencyCode(tok) {
			continue
		}
		if i+1 >= len(tokens) || tokens[i+1] != "per" {
			continue
		}
		for _, phys := range tokens[i+2:] {
			if _, ok := energyUnits[phys]; ok {
				return domain.BucketEnergy, true
			}
			if _, ok := metalsUnits[phys]; ok {
				return domain.BucketMetals, true
			}
			if _, ok := agricultureUnits[phys]; ok {
				return domain.BucketAgriculture, true
			}
			if _, ok := commodityUnits[phys]; ok {
				return refineCommodity(name), true
			}
		}
	}
	return "", false
}

// refineCommodity narrows a generic per-unit price by name keywords.
// Keywords match whole words only: "Copper Price" must not trip the
// agriculture word "rice", nor "Platinum" the word "tin". Agriculture is
// tested first so "Palm Oil" reads as agriculture, not the energy word
// "oil".
func refineCommodity(name string) domain.Bucket {
	words := strings.Fields(name)
	for _, kw := range agricultureNameWords {
		if hasWord(words, kw) {
			return domain.BucketAgriculture
		}
	}
	for _, kw := range metalsNameWords {
		if hasWord(words, kw) {
			return domain.BucketMetals
		}
	}
	for _, kw := range energyNameWords {
		if hasWord(words, kw) {
			return domain.BucketEnergy
		}
	}
	return domain.BucketCommodities
}

func hasWord(words []string, kw string) bool {
	for _, w := range words {
		if w == kw {
			return true
		}
	}
	return false
}

// matchMonetary recognizes absolute currency-denominated amounts: a bare
// code, "USD Million", "thousand GBP". Stock vs flow is decided by name
// keywords; unclear names default to stock (point-in-time).
func matchMonetary(name, _ string, tokens []string) (domain.Bucket, bool) {
	found := false
	for _, tok := range tokens {
		if domain.IsCurrencyCode(tok) {
			found = true
			break
		}
	}
	if !found {
		return "", false
	}
	if hasKeyword(name, flowKeywords) && !hasKeyword(name, stockKeywords) {
		return domain.BucketMonetaryFlow, true
	}
	return domain.BucketMonetaryStock, true
}

func matchPercentage(_, unit string, tokens []string) (domain.Bucket, bool) {
	if strings.Contains(unit, "%") {
		return domain.BucketPercentages, true
	}
	for _, tok := range tokens {
		if tok == "percent" || tok == "percentage" || tok == "pct" {
			return domain.BucketPercentages, true
		}
	}
	return "", false
}

func matchIndex(_, unit string, _ []string) (domain.Bucket, bool) {
	for _, tok := range indexTokens {
		if strings.Contains(unit, tok) {
			return domain.BucketIndices, true
		}
	}
	return "", false
}

func matchRatio(name, unit string, _ []string) (domain.Bucket, bool) {
	if strings.Contains(unit, "ratio") || strings.Contains(name, "ratio") {
		return domain.BucketRatios, true
	}
	return "", false
}

func matchCount(_, _ string, tokens []string) (domain.Bucket, bool) {
	for _, tok := range tokens {
		if _, ok := countUnits[tok]; ok {
			return domain.BucketCounts, true
		}
	}
	return "", false
}

// hasKeyword reports whether any keyword occurs in the lower-cased name.
// One- and two-character keywords (M0..M3) match whole words only.
func hasKeyword(name string, keywords []string) bool {
	for _, kw := range keywords {
		if len(kw) <= 2 {
			for _, field := range strings.Fields(name) {
				if field == kw {
					return true
				}
			}
			continue
		}
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
