package tripcounter

import (
	"cmp"
	"slices"
)

// Frequency is the amount of trips that share the same Value
type Frequency[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// TripCounter counts trips grouped by a key, e.g. start station, start hour or user type.
// Ties between keys are resolved with compare: the lowest key wins.
type TripCounter[K comparable] struct {
	counters map[K]int
	total    int
	compare  func(a, b K) int
}

// NewTripCounter returns a TripCounter for keys with a natural order
func NewTripCounter[K cmp.Ordered]() *TripCounter[K] {
	return NewTripCounterFunc[K](cmp.Compare[K])
}

// NewTripCounterFunc returns a TripCounter that orders its keys with compare
func NewTripCounterFunc[K comparable](compare func(a, b K) int) *TripCounter[K] {
	return &TripCounter[K]{
		counters: make(map[K]int),
		compare:  compare,
	}
}

func (tc *TripCounter[K]) UpdateCounter(key K) {
	tc.counters[key] += 1
	tc.total += 1
}

// GetTotal returns the amount of trips counted
func (tc *TripCounter[K]) GetTotal() int {
	return tc.total
}

// Len returns the amount of distinct keys
func (tc *TripCounter[K]) Len() int {
	return len(tc.counters)
}

// Mode returns the most frequent key and its count. If several keys share the
// highest count, the lowest one is returned. The bool is false if nothing was counted.
func (tc *TripCounter[K]) Mode() (K, int, bool) {
	var (
		mode  K
		count int
		found bool
	)
	for key, counter := range tc.counters {
		if !found || counter > count || (counter == count && tc.compare(key, mode) < 0) {
			mode, count, found = key, counter, true
		}
	}
	return mode, count, found
}

// Distribution returns every key with its count, sorted by count descending and then by key ascending
func (tc *TripCounter[K]) Distribution() []Frequency[K] {
	distribution := make([]Frequency[K], 0, len(tc.counters))
	for key, counter := range tc.counters {
		distribution = append(distribution, Frequency[K]{Value: key, Count: counter})
	}

	slices.SortFunc(distribution, func(a, b Frequency[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return tc.compare(a.Value, b.Value)
	})
	return distribution
}
