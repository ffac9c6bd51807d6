package trip

import (
	"time"
)

// TripRecord struct that contains the data of one trip
// + Row: position of the trip in the source file, starting at 0
// + StartTime: date and time in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: category of the user, e.g. Subscriber
// + Gender: gender of the user. Empty when unknown or when the city does not track it
// + BirthYear: birth year of the user. Zero when unknown or when the city does not track it
// + Month, Weekday, Hour: derived from StartTime when the record is built
type TripRecord struct {
	Row          int       `json:"row"`
	StartTime    time.Time `json:"start_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	Weekday      string    `json:"weekday"`
	Hour         int       `json:"hour"`
}

func NewTripRecord(row int, startTime time.Time, startStation string, endStation string, duration float64, userType string) TripRecord {
	return TripRecord{
		Row:          row,
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        int(startTime.Month()),
		Weekday:      startTime.Weekday().String(),
		Hour:         startTime.Hour(),
	}
}

// GetRoute returns the ordered pair of stations of the trip
func (tr TripRecord) GetRoute() Route {
	return Route{Start: tr.StartStation, End: tr.EndStation}
}

func (tr TripRecord) HasBirthYear() bool {
	return tr.BirthYear != 0
}
