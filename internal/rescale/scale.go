// Package rescale converts values and series between recurring time bases
// using calendar-accurate period lengths.
package rescale

import (
	"errors"

	"indicator-engine/internal/domain"
)

// Calendar-accurate period lengths, in days.
const (
	DaysPerYear    = 365.25
	DaysPerQuarter = DaysPerYear / 4
	DaysPerMonth   = DaysPerYear / 12
	DaysPerWeek    = 7.0
	DaysPerHour    = 1.0 / 24.0
)

// AnnualWorkHours is the full-time-equivalent convention: 40 hours times
// 52 weeks. Hourly wages scale through this, not through literal
// hours-per-year.
const AnnualWorkHours = 2080.0

// ErrUnknownPeriod is returned for a period outside the supported set.
var ErrUnknownPeriod = errors.New("unknown period")

// WageConventionHourly marks wage values quoted per worked hour.
const WageConventionHourly = "hourly"

// PeriodDays returns the calendar length of one period, in days.
func PeriodDays(p domain.Period) (float64, error) {
	switch p {
	case domain.PeriodHourly:
		return DaysPerHour, nil
	case domain.PeriodDaily:
		return 1, nil
	case domain.PeriodWeekly:
		return DaysPerWeek, nil
	case domain.PeriodMonthly:
		return DaysPerMonth, nil
	case domain.PeriodQuarterly:
		return DaysPerQuarter, nil
	case domain.PeriodYearly:
		return DaysPerYear, nil
	}
	return 0, ErrUnknownPeriod
}

// ConvertScale converts a per-period value between time bases by the
// ratio of period lengths: smaller to larger multiplies, larger to
// smaller divides. Hourly to monthly multiplies by 365.25*24/12 = 730.5.
func ConvertScale(value float64, from, to domain.Period) (float64, error) {
	if from == to {
		return value, nil
	}
	fromDays, err := PeriodDays(from)
	if err != nil {
		return 0, err
	}
	toDays, err := PeriodDays(to)
	if err != nil {
		return 0, err
	}
	return value * toDays / fromDays, nil
}

// ConvertWageScale converts a wage between time bases. Under the "hourly"
// convention an hourly wage annualizes through AnnualWorkHours (25/hour
// → 25*2080/12 ≈ 4333.33 monthly) instead of the generic calendar ratio.
// Any other convention falls back to ConvertScale.
func ConvertWageScale(value float64, from, to domain.Period, convention string) (float64, error) {
	if convention != WageConventionHourly || (from != domain.PeriodHourly && to != domain.PeriodHourly) {
		return ConvertScale(value, from, to)
	}

	annual := value
	if from == domain.PeriodHourly {
		annual = value * AnnualWorkHours
	} else {
		var err error
		annual, err = ConvertScale(value, from, domain.PeriodYearly)
		if err != nil {
			return 0, err
		}
	}

	if to == domain.PeriodHourly {
		return annual / AnnualWorkHours, nil
	}
	return ConvertScale(annual, domain.PeriodYearly, to)
}
