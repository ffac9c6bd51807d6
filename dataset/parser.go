package dataset

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	timestampLayout = "2006-01-02 15:04:05"

	startTimeColumn    = "Start Time"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	tripDurationColumn = "Trip Duration"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"
)

var requiredColumns = []string{
	startTimeColumn,
	startStationColumn,
	endStationColumn,
	tripDurationColumn,
	userTypeColumn,
}

// Parse reads every trip of a city from a CSV source. Any invalid record aborts
// the whole parse: a partial Dataset is never returned. A source with a header and
// no trips is a valid empty Dataset.
func Parse(c city.City, reader io.Reader) (*Dataset, error) {
	frame, names, err := utils.ReadStringCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingSource, err.Error())
	}

	nrow := 0
	columns := make(map[string][]string, len(names))
	for _, name := range names {
		var values []string
		if frame != nil {
			values = frame.Col(name).Records()
			nrow = frame.Nrow()
		}
		columns[strings.TrimSpace(name)] = values
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	genderValues, hasGender := columns[genderColumn]
	birthYearValues, hasBirthYear := columns[birthYearColumn]
	schema := Schema{HasGender: hasGender, HasBirthYear: hasBirthYear}

	trips := make([]trip.TripRecord, 0, nrow)
	for row := 0; row < nrow; row++ {
		tripRecord, err := parseTrip(row, columns)
		if err != nil {
			return nil, err
		}

		if hasGender {
			tripRecord.Gender = cleanValue(genderValues[row])
		}

		if hasBirthYear {
			birthYear, err := parseBirthYear(birthYearValues[row])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row+1, err)
			}
			tripRecord.BirthYear = birthYear
		}

		trips = append(trips, tripRecord)
	}

	return &Dataset{
		city:   c,
		schema: schema,
		trips:  trips,
		source: frame,
	}, nil
}

func parseTrip(row int, columns map[string][]string) (trip.TripRecord, error) {
	startTimeStr := cleanValue(columns[startTimeColumn][row])
	startTime, err := time.Parse(timestampLayout, startTimeStr)
	if err != nil {
		return trip.TripRecord{}, fmt.Errorf("row %d: %w: %q: %w", row+1, ErrInvalidTimestamp, startTimeStr, ErrInvalidTripData)
	}

	startStation := cleanValue(columns[startStationColumn][row])
	if startStation == "" {
		return trip.TripRecord{}, fmt.Errorf("row %d: %w: %s: %w", row+1, ErrMissingField, startStationColumn, ErrInvalidTripData)
	}

	endStation := cleanValue(columns[endStationColumn][row])
	if endStation == "" {
		return trip.TripRecord{}, fmt.Errorf("row %d: %w: %s: %w", row+1, ErrMissingField, endStationColumn, ErrInvalidTripData)
	}

	durationStr := cleanValue(columns[tripDurationColumn][row])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return trip.TripRecord{}, fmt.Errorf("row %d: %w: %q: %w", row+1, ErrInvalidDuration, durationStr, ErrInvalidTripData)
	}

	userType := cleanValue(columns[userTypeColumn][row])

	return trip.NewTripRecord(row, startTime, startStation, endStation, duration, userType), nil
}

// parseBirthYear accepts integer years and the float form some sources use, e.g. 1989.0.
// A blank value means unknown and is returned as zero.
func parseBirthYear(value string) (int, error) {
	value = cleanValue(value)
	if value == "" {
		return 0, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil || year <= 0 || year != math.Trunc(year) {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidBirthYear, value, ErrInvalidTripData)
	}
	return int(year), nil
}

func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	if value == utils.NaNMarker {
		return ""
	}
	return value
}
