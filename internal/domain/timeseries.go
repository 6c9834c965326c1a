package domain

import "time"

// SeriesPoint is one observation in a time series.
// A series is a sequence, not a set: duplicate dates are permitted and
// treated independently.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Period is a recurring reporting period.
type Period string

const (
	PeriodHourly    Period = "hourly"
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// ParsePeriod maps common periodicity spellings ("Monthly", "per week",
// "Annual") to a Period. Returns false when no period is recognized.
func ParsePeriod(s string) (Period, bool) {
	switch normalizePeriodWord(s) {
	case "hour", "hourly":
		return PeriodHourly, true
	case "day", "daily":
		return PeriodDaily, true
	case "week", "weekly":
		return PeriodWeekly, true
	case "month", "monthly":
		return PeriodMonthly, true
	case "quarter", "quarterly":
		return PeriodQuarterly, true
	case "year", "yearly", "annual", "annually":
		return PeriodYearly, true
	}
	return "", false
}

func normalizePeriodWord(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' {
			out = append(out, c)
		}
	}
	w := string(out)
	// strip a leading "per": "per week" → "week"
	if len(w) > 3 && w[:3] == "per" {
		w = w[3:]
	}
	return w
}
