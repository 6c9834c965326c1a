package fx

import "fmt"

// MissingRateError is returned when a conversion needs a non-base code
// that is absent from the rate table. Fatal for the item, never for the
// batch.
type MissingRateError struct {
	Code string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for %s", e.Code)
}

// InvalidRateError is returned when a consulted rate is zero or negative.
type InvalidRateError struct {
	Code string
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid exchange rate %v for %s", e.Rate, e.Code)
}
