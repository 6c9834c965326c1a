package fx

import (
	"strings"

	"indicator-engine/internal/domain"
)

// Detect inspects a record's unit (and explicit currency code) for
// currency content. Pure and total: unrecognized units report
// PricePatternNone.
func Detect(rec domain.IndicatorRecord) domain.FXDetection {
	tokens := tokenize(rec.Unit)

	for i, tok := range tokens {
		if !domain.IsCurrencyCode(tok) {
			continue
		}
		code := strings.ToUpper(tok)
		if i+1 < len(tokens) && tokens[i+1] == "per" {
			return domain.FXDetection{
				NeedsFX:      true,
				CurrencyCode: code,
				PricePattern: domain.PricePatternPerUnit,
			}
		}
		return domain.FXDetection{
			NeedsFX:      true,
			CurrencyCode: code,
			PricePattern: domain.PricePatternAbsolute,
		}
	}

	// Fall back to the explicit currency field when the unit text carries
	// no recognizable token ("National currency" feeds do this).
	if domain.IsCurrencyCode(rec.CurrencyCode) {
		return domain.FXDetection{
			NeedsFX:      true,
			CurrencyCode: strings.ToUpper(rec.CurrencyCode),
			PricePattern: domain.PricePatternAbsolute,
		}
	}

	return domain.FXDetection{PricePattern: domain.PricePatternNone}
}

// Needs applies the bucket policy to a detection: monetary buckets always
// need conversion when a currency is present; commodity-family and crypto
// buckets only when the currency rides a per-unit price; dimensionless
// buckets never, regardless of any embedded token.
func Needs(bucket domain.Bucket, det domain.FXDetection) bool {
	if bucket.NeverNeedsFX() {
		return false
	}
	if !det.NeedsFX || det.CurrencyCode == "" {
		return false
	}
	if bucket.IsMonetary() {
		return true
	}
	if bucket.IsCommodityFamily() || bucket == domain.BucketCrypto {
		return det.PricePattern == domain.PricePatternPerUnit
	}
	// BucketOther: convert only an unambiguous absolute amount.
	return det.PricePattern == domain.PricePatternAbsolute
}

// Item pairs a record with its classification and detection for routing.
type Item struct {
	Record    domain.IndicatorRecord
	Bucket    domain.Bucket
	Detection domain.FXDetection
}

// Split partitions records into FX-requiring and FX-free items. The
// partition is stable: original relative order is preserved within each
// half, and every item carries its detection so downstream stages never
// recompute it. buckets must be parallel to records.
func Split(records []domain.IndicatorRecord, buckets []domain.Bucket) (fxItems, nonFXItems []Item) {
	for i, rec := range records {
		item := Item{
			Record:    rec,
			Bucket:    buckets[i],
			Detection: Detect(rec),
		}
		if Needs(item.Bucket, item.Detection) {
			fxItems = append(fxItems, item)
		} else {
			nonFXItems = append(nonFXItems, item)
		}
	}
	return fxItems, nonFXItems
}

// tokenize mirrors the classifier's unit tokenization: lower-case, with
// slashes reading as "per".
func tokenize(unit string) []string {
	lower := strings.ToLower(unit)
	replaced := strings.NewReplacer("/", " per ", "(", " ", ")", " ", ",", " ", ";", " ").Replace(lower)
	return strings.Fields(replaced)
}
