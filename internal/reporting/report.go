// Package reporting renders the audit trail of a normalization run.
package reporting

import (
	"sort"
	"time"

	"indicator-engine/internal/domain"
	"indicator-engine/internal/pipeline"
)

// Report is the audit view of one pipeline run.
type Report struct {
	RunID       string
	GeneratedAt time.Time

	TotalRecords      int
	Normalized        int
	IncompatibleUnits int
	Failed            int

	BucketCounts []BucketCount
	Corrections  []domain.RateCorrection
	Warnings     []pipeline.Warning
	Errors       []pipeline.ItemError
}

// BucketCount is the number of normalized records in one bucket.
type BucketCount struct {
	Bucket domain.Bucket
	Count  int
}

// Build assembles a report from a pipeline result. Bucket counts are
// sorted by bucket name so the rendering is deterministic.
func Build(res *pipeline.Result, generatedAt time.Time) *Report {
	counts := make(map[domain.Bucket]int)
	for _, rec := range res.Data {
		counts[rec.Bucket]++
	}
	buckets := make([]BucketCount, 0, len(counts))
	for b, n := range counts {
		buckets = append(buckets, BucketCount{Bucket: b, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Bucket < buckets[j].Bucket })

	return &Report{
		RunID:             res.RunID,
		GeneratedAt:       generatedAt,
		TotalRecords:      len(res.Data) + len(res.IncompatibleUnits) + len(res.Errors),
		Normalized:        len(res.Data),
		IncompatibleUnits: len(res.IncompatibleUnits),
		Failed:            len(res.Errors),
		BucketCounts:      buckets,
		Corrections:       res.Corrections,
		Warnings:          res.Warnings,
		Errors:            res.Errors,
	}
}
