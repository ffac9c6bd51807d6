package dataset

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Schema describes the optional columns of a city's source.
// It is detected once from the header, never per record.
type Schema struct {
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Dataset is an immutable, ordered collection of trips of one city.
// Filtering returns a new Dataset and keeps the source order.
type Dataset struct {
	city   city.City
	schema Schema
	trips  []trip.TripRecord
	source *dataframe.DataFrame
}

// NewDataset builds a Dataset from already parsed trips. The slice is copied.
func NewDataset(c city.City, schema Schema, trips []trip.TripRecord) *Dataset {
	copied := make([]trip.TripRecord, len(trips))
	copy(copied, trips)
	return &Dataset{
		city:   c,
		schema: schema,
		trips:  copied,
	}
}

func (d *Dataset) City() city.City {
	return d.city
}

func (d *Dataset) Schema() Schema {
	return d.schema
}

func (d *Dataset) Len() int {
	return len(d.trips)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.trips) == 0
}

// Trip returns the i-th trip of the dataset
func (d *Dataset) Trip(i int) trip.TripRecord {
	return d.trips[i]
}

// Filter returns the trips that match the month and day of criteria.
// The city of criteria is not checked. The receiver is never modified.
func (d *Dataset) Filter(criteria filter.Criteria) *Dataset {
	if criteria.IsEmpty() {
		return d
	}

	kept := make([]trip.TripRecord, 0, len(d.trips))
	for _, tripRecord := range d.trips {
		if criteria.Matches(tripRecord) {
			kept = append(kept, tripRecord)
		}
	}

	return &Dataset{
		city:   d.city,
		schema: d.schema,
		trips:  kept,
		source: d.source,
	}
}

// Rows returns up to limit raw rows starting at offset, as they appear in the source.
// The bool is false when there are no rows left.
func (d *Dataset) Rows(offset int, limit int) (dataframe.DataFrame, bool) {
	if offset < 0 || limit <= 0 || offset >= len(d.trips) {
		return dataframe.DataFrame{}, false
	}

	end := offset + limit
	if end > len(d.trips) {
		end = len(d.trips)
	}
	page := d.trips[offset:end]

	if d.source == nil {
		return d.toFrame(page), true
	}

	indexes := make([]int, 0, len(page))
	for _, tripRecord := range page {
		indexes = append(indexes, tripRecord.Row)
	}
	return d.source.Subset(indexes), true
}

// toFrame renders parsed trips as a DataFrame, used when the raw source is not available
func (d *Dataset) toFrame(trips []trip.TripRecord) dataframe.DataFrame {
	header := []string{startTimeColumn, startStationColumn, endStationColumn, tripDurationColumn, userTypeColumn}
	if d.schema.HasGender {
		header = append(header, genderColumn)
	}
	if d.schema.HasBirthYear {
		header = append(header, birthYearColumn)
	}

	records := [][]string{header}
	for _, tripRecord := range trips {
		row := []string{
			tripRecord.StartTime.Format(timestampLayout),
			tripRecord.StartStation,
			tripRecord.EndStation,
			strconv.FormatFloat(tripRecord.Duration, 'f', -1, 64),
			tripRecord.UserType,
		}
		if d.schema.HasGender {
			row = append(row, tripRecord.Gender)
		}
		if d.schema.HasBirthYear {
			birthYear := ""
			if tripRecord.HasBirthYear() {
				birthYear = fmt.Sprintf("%d", tripRecord.BirthYear)
			}
			row = append(row, birthYear)
		}
		records = append(records, row)
	}

	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{utils.NaNMarker}),
	)
}
