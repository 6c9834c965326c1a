package rescale

import (
	"sort"
	"time"

	"indicator-engine/internal/domain"
)

// Method selects the downsampling aggregation.
type Method string

const (
	MethodAverage     Method = "average"
	MethodSum         Method = "sum"
	MethodPeriodEnd   Method = "period_end"
	MethodPeriodStart Method = "period_start"
)

// ResampleOptions configures Resample. Zero value means MethodAverage.
type ResampleOptions struct {
	Method Method
}

// Resample converts a series to the target period. Finer targets
// interpolate linearly between bracketing known points; coarser targets
// aggregate all source points falling inside each target bucket. The
// input is sorted by date first (stable, so duplicate dates keep their
// original relative order) and is never mutated. Resampling the same
// input with the same options always yields identical output.
//
// A target matching the series' own spacing is a no-op and returns an
// equivalent sorted series.
func Resample(series []domain.SeriesPoint, target domain.Period, opts ResampleOptions) ([]domain.SeriesPoint, error) {
	targetDays, err := PeriodDays(target)
	if err != nil {
		return nil, err
	}
	if opts.Method == "" {
		opts.Method = MethodAverage
	}

	if len(series) == 0 {
		return nil, nil
	}

	sorted := make([]domain.SeriesPoint, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	if len(sorted) == 1 {
		return sorted, nil
	}

	spacing := medianSpacingDays(sorted)
	switch {
	case sameScale(spacing, targetDays):
		return sorted, nil
	case targetDays < spacing:
		return upsample(sorted, target), nil
	default:
		return downsample(sorted, target, opts.Method), nil
	}
}

// medianSpacingDays is the median gap between consecutive points, in days.
func medianSpacingDays(sorted []domain.SeriesPoint) float64 {
	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Date.Sub(sorted[i-1].Date).Hours()/24)
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}

// sameScale tolerates calendar jitter (28 vs 31 day months) when deciding
// that a series already sits on the target period.
func sameScale(spacing, targetDays float64) bool {
	if spacing <= 0 {
		return false
	}
	ratio := targetDays / spacing
	return ratio > 0.75 && ratio < 1.4
}

// upsample emits synthetic points at the target step between each pair of
// bracketing known points, linearly interpolated in time.
func upsample(sorted []domain.SeriesPoint, target domain.Period) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(sorted))
	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]
		out = append(out, a)
		if !b.Date.After(a.Date) {
			continue
		}
		span := b.Date.Sub(a.Date)
		for t := stepDate(a.Date, target); t.Before(b.Date); t = stepDate(t, target) {
			frac := float64(t.Sub(a.Date)) / float64(span)
			out = append(out, domain.SeriesPoint{
				Date:  t,
				Value: a.Value + (b.Value-a.Value)*frac,
			})
		}
	}
	return append(out, sorted[len(sorted)-1])
}

// downsample buckets points by target period start and aggregates each
// bucket. Points are already sorted, so buckets close in order and the
// output is ascending by date.
func downsample(sorted []domain.SeriesPoint, target domain.Period, method Method) []domain.SeriesPoint {
	var out []domain.SeriesPoint

	var bucket time.Time
	var values []float64
	flush := func() {
		if len(values) == 0 {
			return
		}
		out = append(out, domain.SeriesPoint{Date: bucket, Value: aggregate(values, method)})
		values = values[:0]
	}

	for _, p := range sorted {
		start := bucketStart(p.Date, target)
		if len(values) > 0 && !start.Equal(bucket) {
			flush()
		}
		bucket = start
		values = append(values, p.Value)
	}
	flush()
	return out
}

func aggregate(values []float64, method Method) float64 {
	switch method {
	case MethodSum:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum
	case MethodPeriodStart:
		return values[0]
	case MethodPeriodEnd:
		return values[len(values)-1]
	default: // MethodAverage
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}
}

// bucketStart truncates a timestamp to the start of its target period,
// in the timestamp's own location. Weeks start on Monday.
func bucketStart(t time.Time, target domain.Period) time.Time {
	switch target {
	case domain.PeriodHourly:
		return t.Truncate(time.Hour)
	case domain.PeriodDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case domain.PeriodWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case domain.PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case domain.PeriodQuarterly:
		q := (int(t.Month()) - 1) / 3
		return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, t.Location())
	default: // yearly
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	}
}

// stepDate advances one target period, calendar-aware for months and up.
func stepDate(t time.Time, target domain.Period) time.Time {
	switch target {
	case domain.PeriodHourly:
		return t.Add(time.Hour)
	case domain.PeriodDaily:
		return t.AddDate(0, 0, 1)
	case domain.PeriodWeekly:
		return t.AddDate(0, 0, 7)
	case domain.PeriodMonthly:
		return t.AddDate(0, 1, 0)
	case domain.PeriodQuarterly:
		return t.AddDate(0, 3, 0)
	default: // yearly
		return t.AddDate(1, 0, 0)
	}
}
