package durationaccumulator

import "errors"

var ErrNoTrips = errors.New("no trips were accumulated")

// DurationAccumulator struct that collects the duration of trips.
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of the trips, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) SetDuration(duration float64) {
	da.TotalDuration = duration
}

func (da *DurationAccumulator) SetCounter(counter int) {
	da.Counter = counter
}

// GetTotalDuration returns the sum of durations. It fails if no trip was collected:
// a total over zero trips is undefined, not zero.
func (da *DurationAccumulator) GetTotalDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrNoTrips
	}
	return da.TotalDuration, nil
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrNoTrips
	}
	return da.TotalDuration / float64(da.Counter), nil
}
