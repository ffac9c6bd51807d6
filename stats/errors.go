package stats

import "errors"

var (
	ErrInvalidEngineType = errors.New("invalid statistics engine type")
	ErrQueryingTrips     = errors.New("error querying trips")
)
