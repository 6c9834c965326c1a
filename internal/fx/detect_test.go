package fx

import (
	"testing"

	"indicator-engine/internal/domain"
)

func TestDetect_Patterns(t *testing.T) {
	cases := []struct {
		unit     string
		currency string
		pattern  domain.PricePattern
	}{
		{"EUR/MWh", "EUR", domain.PricePatternPerUnit},
		{"USD per barrel", "USD", domain.PricePatternPerUnit},
		{"XOF per tonne", "XOF", domain.PricePatternPerUnit},
		{"USD Million", "USD", domain.PricePatternAbsolute},
		{"thousand GBP", "GBP", domain.PricePatternAbsolute},
		{"ZWL", "ZWL", domain.PricePatternAbsolute},
		{"SSP Billion", "SSP", domain.PricePatternAbsolute},
		{"MDL Million", "MDL", domain.PricePatternAbsolute},
		{"percent", "", domain.PricePatternNone},
		{"Index (2015=100)", "", domain.PricePatternNone},
		{"Thousand Units", "", domain.PricePatternNone},
	}

	for _, tc := range cases {
		det := Detect(domain.IndicatorRecord{Unit: tc.unit})
		if det.PricePattern != tc.pattern {
			t.Errorf("%s: expected pattern %s, got %s", tc.unit, tc.pattern, det.PricePattern)
		}
		if det.CurrencyCode != tc.currency {
			t.Errorf("%s: expected currency %q, got %q", tc.unit, tc.currency, det.CurrencyCode)
		}
		if det.NeedsFX != (tc.currency != "") {
			t.Errorf("%s: needsFX mismatch", tc.unit)
		}
	}
}

func TestDetect_ExplicitCurrencyFallback(t *testing.T) {
	det := Detect(domain.IndicatorRecord{Unit: "National currency", CurrencyCode: "mdl"})

	if !det.NeedsFX || det.CurrencyCode != "MDL" {
		t.Errorf("expected MDL fallback, got %+v", det)
	}
	if det.PricePattern != domain.PricePatternAbsolute {
		t.Errorf("expected absolute, got %s", det.PricePattern)
	}
}

func TestNeeds_BucketPolicy(t *testing.T) {
	perUnit := domain.FXDetection{NeedsFX: true, CurrencyCode: "EUR", PricePattern: domain.PricePatternPerUnit}
	absolute := domain.FXDetection{NeedsFX: true, CurrencyCode: "EUR", PricePattern: domain.PricePatternAbsolute}
	none := domain.FXDetection{PricePattern: domain.PricePatternNone}

	cases := []struct {
		bucket domain.Bucket
		det    domain.FXDetection
		want   bool
	}{
		// monetary buckets convert unconditionally when a currency shows up
		{domain.BucketMonetaryStock, absolute, true},
		{domain.BucketMonetaryFlow, absolute, true},
		// commodity family converts only the per-unit price component
		{domain.BucketEnergy, perUnit, true},
		{domain.BucketEnergy, absolute, false},
		{domain.BucketEnergy, none, false},
		{domain.BucketMetals, perUnit, true},
		{domain.BucketCrypto, perUnit, true},
		{domain.BucketCrypto, absolute, false},
		// dimensionless buckets never convert, even with an embedded token
		{domain.BucketPercentages, absolute, false},
		{domain.BucketIndices, perUnit, false},
		{domain.BucketCounts, absolute, false},
		{domain.BucketRatios, absolute, false},
	}

	for _, tc := range cases {
		if got := Needs(tc.bucket, tc.det); got != tc.want {
			t.Errorf("%s / %s: expected %v, got %v", tc.bucket, tc.det.PricePattern, tc.want, got)
		}
	}
}

func TestSplit_StableWithDetections(t *testing.T) {
	records := []domain.IndicatorRecord{
		{ID: "a", Unit: "USD Million"},
		{ID: "b", Unit: "percent"},
		{ID: "c", Unit: "EUR/MWh"},
		{ID: "d", Unit: "points"},
		{ID: "e", Unit: "KRW Billion"},
	}
	buckets := []domain.Bucket{
		domain.BucketMonetaryStock,
		domain.BucketPercentages,
		domain.BucketEnergy,
		domain.BucketIndices,
		domain.BucketMonetaryFlow,
	}

	fxItems, nonFX := Split(records, buckets)

	if len(fxItems) != 3 || len(nonFX) != 2 {
		t.Fatalf("expected 3/2 split, got %d/%d", len(fxItems), len(nonFX))
	}
	// original relative order preserved within each partition
	if fxItems[0].Record.ID != "a" || fxItems[1].Record.ID != "c" || fxItems[2].Record.ID != "e" {
		t.Errorf("fx order wrong: %s %s %s", fxItems[0].Record.ID, fxItems[1].Record.ID, fxItems[2].Record.ID)
	}
	if nonFX[0].Record.ID != "b" || nonFX[1].Record.ID != "d" {
		t.Errorf("non-fx order wrong: %s %s", nonFX[0].Record.ID, nonFX[1].Record.ID)
	}
	// detections ride along, no downstream recomputation
	for _, it := range fxItems {
		if it.Detection.CurrencyCode == "" {
			t.Errorf("%s: missing detection", it.Record.ID)
		}
	}
}
