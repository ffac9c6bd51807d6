package stats

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
)

// TimeStats contains the most frequent times of travel.
// When Empty is true the other fields are meaningless.
type TimeStats struct {
	Empty        bool   `json:"empty"`
	PopularMonth int    `json:"popular_month"`
	PopularDay   string `json:"popular_day"`
	PopularHour  int    `json:"popular_hour"`
}

// PopularRoute is the most frequent pair of start and end stations
type PopularRoute struct {
	Route trip.Route `json:"route"`
	Count int        `json:"count"`
}

// StationStats contains the most popular stations and trip.
// RouteDistanceKm is nil when the coordinates of the route stations are unknown.
type StationStats struct {
	Empty           bool         `json:"empty"`
	PopularStart    string       `json:"popular_start"`
	PopularEnd      string       `json:"popular_end"`
	PopularRoute    PopularRoute `json:"popular_route"`
	RouteDistanceKm *float64     `json:"route_distance_km,omitempty"`
}

// DurationStats contains the total and mean trip duration in seconds
type DurationStats struct {
	Empty bool    `json:"empty"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
}

// GenderStats is the gender distribution. Available is false when the city does not record gender.
type GenderStats struct {
	Available bool                            `json:"available"`
	Counts    []tripcounter.Frequency[string] `json:"counts"`
}

// BirthYearStats contains the earliest, most recent and most common birth year.
// Available is false when the city does not record birth years. Empty is true when
// no trip of the dataset has a known birth year.
type BirthYearStats struct {
	Available  bool `json:"available"`
	Empty      bool `json:"empty"`
	Earliest   int  `json:"earliest"`
	MostRecent int  `json:"most_recent"`
	MostCommon int  `json:"most_common"`
}

// UserStats contains the demographics of the users
type UserStats struct {
	Empty     bool                            `json:"empty"`
	UserTypes []tripcounter.Frequency[string] `json:"user_types"`
	Gender    GenderStats                     `json:"gender"`
	BirthYear BirthYearStats                  `json:"birth_year"`
}
