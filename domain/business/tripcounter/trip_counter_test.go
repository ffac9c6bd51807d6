package tripcounter

import (
	"reflect"
	"testing"

	"bikeshare/domain/entities/trip"
)

func TestModeSingleValue(t *testing.T) {
	counter := NewTripCounter[string]()
	counter.UpdateCounter("Subscriber")

	got, count, ok := counter.Mode()
	if !ok || got != "Subscriber" || count != 1 {
		t.Errorf("Mode: got %q %d %v, want Subscriber 1 true", got, count, ok)
	}
}

func TestModeEmpty(t *testing.T) {
	counter := NewTripCounter[int]()
	if _, _, ok := counter.Mode(); ok {
		t.Error("Mode of an empty counter should not be found")
	}
	if got := counter.Distribution(); len(got) != 0 {
		t.Errorf("Distribution: got %v, want empty", got)
	}
}

func TestModeTieLowestWins(t *testing.T) {
	hours := NewTripCounter[int]()
	for _, hour := range []int{17, 8, 17, 8, 9} {
		hours.UpdateCounter(hour)
	}
	if got, count, _ := hours.Mode(); got != 8 || count != 2 {
		t.Errorf("Mode: got %d (%d), want 8 (2)", got, count)
	}

	days := NewTripCounter[string]()
	for _, day := range []string{"Wednesday", "Monday", "Friday"} {
		days.UpdateCounter(day)
	}
	if got, _, _ := days.Mode(); got != "Friday" {
		t.Errorf("Mode: got %q, want Friday", got)
	}
}

func TestModeRoutes(t *testing.T) {
	routes := NewTripCounterFunc[trip.Route](trip.CompareRoutes)
	routes.UpdateCounter(trip.Route{Start: "C", End: "A"})
	routes.UpdateCounter(trip.Route{Start: "A", End: "C"})
	routes.UpdateCounter(trip.Route{Start: "A", End: "B"})
	routes.UpdateCounter(trip.Route{Start: "C", End: "A"})
	routes.UpdateCounter(trip.Route{Start: "A", End: "C"})

	got, count, _ := routes.Mode()
	want := trip.Route{Start: "A", End: "C"}
	if got != want || count != 2 {
		t.Errorf("Mode: got %v (%d), want %v (2)", got, count, want)
	}
}

func TestDistribution(t *testing.T) {
	counter := NewTripCounter[string]()
	for _, value := range []string{"Male", "Female", "Male", "Other", "Female", "Male"} {
		counter.UpdateCounter(value)
	}

	want := []Frequency[string]{
		{Value: "Male", Count: 3},
		{Value: "Female", Count: 2},
		{Value: "Other", Count: 1},
	}
	if got := counter.Distribution(); !reflect.DeepEqual(got, want) {
		t.Errorf("Distribution: got %v, want %v", got, want)
	}
	if counter.GetTotal() != 6 {
		t.Errorf("GetTotal: got %d, want 6", counter.GetTotal())
	}
	if counter.Len() != 3 {
		t.Errorf("Len: got %d, want 3", counter.Len())
	}
}
