package domain

import "strings"

// Magnitude is a canonical order-of-magnitude for reported values.
type Magnitude string

const (
	MagnitudeOnes      Magnitude = "ones"
	MagnitudeThousands Magnitude = "thousands"
	MagnitudeMillions  Magnitude = "millions"
	MagnitudeBillions  Magnitude = "billions"
	MagnitudeTrillions Magnitude = "trillions"
)

// Factor returns the multiplier from this magnitude to ones.
// Unknown magnitudes count as ones.
func (m Magnitude) Factor() float64 {
	switch m {
	case MagnitudeThousands:
		return 1e3
	case MagnitudeMillions:
		return 1e6
	case MagnitudeBillions:
		return 1e9
	case MagnitudeTrillions:
		return 1e12
	}
	return 1
}

// Label returns the unit-string spelling of the magnitude ("Million" etc.),
// empty for ones.
func (m Magnitude) Label() string {
	switch m {
	case MagnitudeThousands:
		return "Thousand"
	case MagnitudeMillions:
		return "Million"
	case MagnitudeBillions:
		return "Billion"
	case MagnitudeTrillions:
		return "Trillion"
	}
	return ""
}

// ParseMagnitude recognizes a magnitude word in any casing, singular or
// plural ("Million", "billions", "THOUSAND"). Returns false when the word
// is not a magnitude.
func ParseMagnitude(word string) (Magnitude, bool) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(word)), "s") {
	case "one", "unit":
		return MagnitudeOnes, true
	case "thousand", "k":
		return MagnitudeThousands, true
	case "million", "mn", "mln":
		return MagnitudeMillions, true
	case "billion", "bn", "bln":
		return MagnitudeBillions, true
	case "trillion", "tn", "trn":
		return MagnitudeTrillions, true
	}
	return "", false
}
