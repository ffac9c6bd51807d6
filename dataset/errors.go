package dataset

import "errors"

var (
	ErrCityNotConfigured = errors.New("city has no configured source")
	ErrReadingSource     = errors.New("error reading trips source")
	ErrMissingColumn     = errors.New("missing required column")
	ErrInvalidTripData   = errors.New("invalid trip data")
	ErrInvalidTimestamp  = errors.New("invalid start time")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidDuration   = errors.New("invalid trip duration")
	ErrInvalidBirthYear  = errors.New("invalid birth year")
)
