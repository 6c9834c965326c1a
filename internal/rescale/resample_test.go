package rescale

import (
	"math"
	"testing"
	"time"

	"indicator-engine/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dailySeries(n int, value func(i int) float64) []domain.SeriesPoint {
	series := make([]domain.SeriesPoint, n)
	for i := 0; i < n; i++ {
		series[i] = domain.SeriesPoint{Date: day(2025, time.June, 1+i), Value: value(i)}
	}
	return series
}

func TestResample_DailyToMonthlyAverage(t *testing.T) {
	// 30 daily points in one month average to exactly one point holding
	// their arithmetic mean.
	series := dailySeries(30, func(i int) float64 { return float64(i + 1) })

	got, err := Resample(series, domain.PeriodMonthly, ResampleOptions{Method: MethodAverage})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	// mean of 1..30 = 15.5
	if math.Abs(got[0].Value-15.5) > 1e-9 {
		t.Errorf("expected mean 15.5, got %v", got[0].Value)
	}
	if !got[0].Date.Equal(day(2025, time.June, 1)) {
		t.Errorf("expected bucket start 2025-06-01, got %v", got[0].Date)
	}
}

func TestResample_DownsampleMethods(t *testing.T) {
	series := dailySeries(3, func(i int) float64 { return []float64{10, 20, 60}[i] })

	cases := []struct {
		method Method
		want   float64
	}{
		{MethodAverage, 30},
		{MethodSum, 90},
		{MethodPeriodStart, 10},
		{MethodPeriodEnd, 60},
	}
	for _, tc := range cases {
		got, err := Resample(series, domain.PeriodMonthly, ResampleOptions{Method: tc.method})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.method, err)
		}
		if len(got) != 1 || math.Abs(got[0].Value-tc.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %+v", tc.method, tc.want, got)
		}
	}
}

func TestResample_DownsampleSplitsBuckets(t *testing.T) {
	series := []domain.SeriesPoint{
		{Date: day(2025, time.June, 29), Value: 1},
		{Date: day(2025, time.June, 30), Value: 3},
		{Date: day(2025, time.July, 1), Value: 10},
		{Date: day(2025, time.July, 2), Value: 20},
	}

	got, err := Resample(series, domain.PeriodMonthly, ResampleOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if math.Abs(got[0].Value-2) > 1e-9 || math.Abs(got[1].Value-15) > 1e-9 {
		t.Errorf("expected averages 2 and 15, got %v and %v", got[0].Value, got[1].Value)
	}
	if !got[0].Date.Before(got[1].Date) {
		t.Errorf("output not ascending by date")
	}
}

func TestResample_NoOpOnOwnPeriod(t *testing.T) {
	// Resampling a monthly series to monthly returns an equivalent
	// series despite 28-31 day calendar jitter.
	series := []domain.SeriesPoint{
		{Date: day(2025, time.January, 31), Value: 1},
		{Date: day(2025, time.February, 28), Value: 2},
		{Date: day(2025, time.March, 31), Value: 3},
		{Date: day(2025, time.April, 30), Value: 4},
	}

	got, err := Resample(series, domain.PeriodMonthly, ResampleOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != len(series) {
		t.Fatalf("expected %d points, got %d", len(series), len(got))
	}
	for i := range got {
		if got[i] != series[i] {
			t.Errorf("point %d changed: %+v vs %+v", i, got[i], series[i])
		}
	}
}

func TestResample_UpsampleInterpolates(t *testing.T) {
	// Two monthly points, daily target: synthetic points interpolate
	// linearly between the bracketing knowns.
	series := []domain.SeriesPoint{
		{Date: day(2025, time.June, 1), Value: 0},
		{Date: day(2025, time.July, 1), Value: 30},
	}

	got, err := Resample(series, domain.PeriodDaily, ResampleOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1 original + 29 synthetic + 1 original
	if len(got) != 31 {
		t.Fatalf("expected 31 points, got %d", len(got))
	}
	if got[0].Value != 0 || got[len(got)-1].Value != 30 {
		t.Errorf("endpoints changed: %v, %v", got[0].Value, got[len(got)-1].Value)
	}
	// June 16 is halfway through a 30-day gap
	mid := got[15]
	if !mid.Date.Equal(day(2025, time.June, 16)) {
		t.Fatalf("expected 2025-06-16 at index 15, got %v", mid.Date)
	}
	if math.Abs(mid.Value-15) > 1e-9 {
		t.Errorf("expected interpolated 15, got %v", mid.Value)
	}
}

func TestResample_SortsIrregularInput(t *testing.T) {
	series := []domain.SeriesPoint{
		{Date: day(2025, time.June, 3), Value: 3},
		{Date: day(2025, time.June, 1), Value: 1},
		{Date: day(2025, time.June, 2), Value: 2},
	}

	got, err := Resample(series, domain.PeriodMonthly, ResampleOptions{Method: MethodPeriodEnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || got[0].Value != 3 {
		t.Errorf("expected period-end value 3, got %+v", got)
	}
	// input untouched
	if series[0].Value != 3 {
		t.Errorf("input mutated")
	}
}

func TestResample_Deterministic(t *testing.T) {
	series := dailySeries(45, func(i int) float64 { return float64(i * i % 17) })

	first, err := Resample(series, domain.PeriodWeekly, ResampleOptions{Method: MethodSum})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resample(series, domain.PeriodWeekly, ResampleOptions{Method: MethodSum})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs", i)
		}
	}
}

func TestResample_EmptyAndSingle(t *testing.T) {
	got, err := Resample(nil, domain.PeriodMonthly, ResampleOptions{})
	if err != nil || got != nil {
		t.Errorf("expected nil, nil for empty input, got %v, %v", got, err)
	}

	single := []domain.SeriesPoint{{Date: day(2025, time.June, 1), Value: 7}}
	got, err = Resample(single, domain.PeriodYearly, ResampleOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Value != 7 {
		t.Errorf("expected the single point back, got %+v", got)
	}
}
