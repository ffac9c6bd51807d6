package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

const (
	chicagoFile    = "../testdata/chicago.csv"
	washingtonFile = "../testdata/washington.csv"
	newYorkFile    = "../testdata/new_york_city.csv"
)

func testLoader() *Loader {
	return NewLoader(map[city.City]string{
		city.Chicago:     chicagoFile,
		city.NewYorkCity: newYorkFile,
		city.Washington:  washingtonFile,
	})
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing fixture: %v", err)
	}
	return path
}

func TestLoadAll(t *testing.T) {
	ds, err := testLoader().Load("Chicago", "all", "all")
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if ds.Len() != 6 {
		t.Fatalf("Len: got %d, want 6", ds.Len())
	}
	if ds.City() != city.Chicago {
		t.Errorf("City: got %q, want chicago", ds.City())
	}
	if !ds.Schema().HasGender || !ds.Schema().HasBirthYear {
		t.Errorf("Schema: got %+v, want gender and birth year", ds.Schema())
	}

	first := ds.Trip(0)
	if first.StartStation != "Clark St & Lake St" || first.EndStation != "Michigan Ave & Oak St" {
		t.Errorf("first trip stations: got %q -> %q", first.StartStation, first.EndStation)
	}
	if first.Duration != 300 || first.UserType != "Subscriber" || first.Gender != "Male" || first.BirthYear != 1990 {
		t.Errorf("first trip: got %+v", first)
	}
	if first.Month != 6 || first.Weekday != "Monday" || first.Hour != 8 {
		t.Errorf("first trip derived fields: got month %d, weekday %s, hour %d", first.Month, first.Weekday, first.Hour)
	}

	blank := ds.Trip(2)
	if blank.Gender != "" || blank.HasBirthYear() {
		t.Errorf("blank gender and birth year should stay unknown, got %q %d", blank.Gender, blank.BirthYear)
	}
}

func TestLoadWashingtonSchema(t *testing.T) {
	ds, err := testLoader().Load("washington", "all", "all")
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if ds.Schema().HasGender || ds.Schema().HasBirthYear {
		t.Errorf("Schema: got %+v, want no optional columns", ds.Schema())
	}
	if ds.Len() != 4 {
		t.Errorf("Len: got %d, want 4", ds.Len())
	}
	if ds.Trip(0).Duration != 489.5 {
		t.Errorf("Duration: got %v, want 489.5", ds.Trip(0).Duration)
	}
}

func TestLoadFilters(t *testing.T) {
	ds, err := testLoader().Load("chicago", "march", "monday")
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", ds.Len())
	}
	for i := 0; i < ds.Len(); i++ {
		tripRecord := ds.Trip(i)
		if tripRecord.Month != 3 || tripRecord.Weekday != "Monday" {
			t.Errorf("trip %d: got month %d weekday %s", i, tripRecord.Month, tripRecord.Weekday)
		}
	}
	// source order is kept
	if ds.Trip(0).Row != 3 || ds.Trip(1).Row != 4 {
		t.Errorf("rows: got %d, %d, want 3, 4", ds.Trip(0).Row, ds.Trip(1).Row)
	}
}

func TestLoadEmptyResultIsNotAnError(t *testing.T) {
	ds, err := testLoader().Load("new york city", "march", "monday")
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if !ds.IsEmpty() {
		t.Errorf("Len: got %d, want 0", ds.Len())
	}
}

func TestFilterEveryCombination(t *testing.T) {
	full, err := testLoader().LoadCity(city.Chicago)
	if err != nil {
		t.Fatalf("LoadCity: unexpected error %v", err)
	}

	months := append([]string{filter.All}, filter.Months...)
	days := append([]string{filter.All}, filter.Days...)
	for _, month := range months {
		for _, day := range days {
			criteria := filter.Criteria{City: city.Chicago, Month: month, Day: day}
			filtered := full.Filter(criteria)

			want := 0
			for i := 0; i < full.Len(); i++ {
				if criteria.Matches(full.Trip(i)) {
					want++
				}
			}
			if filtered.Len() != want {
				t.Errorf("%s/%s: got %d trips, want %d", month, day, filtered.Len(), want)
			}
			for i := 0; i < filtered.Len(); i++ {
				if !criteria.Matches(filtered.Trip(i)) {
					t.Errorf("%s/%s: trip %+v does not match", month, day, filtered.Trip(i))
				}
			}

			again := filtered.Filter(criteria)
			if again.Len() != filtered.Len() {
				t.Errorf("%s/%s: filtering twice got %d trips, want %d", month, day, again.Len(), filtered.Len())
			}
			for i := 0; i < again.Len(); i++ {
				if again.Trip(i).Row != filtered.Trip(i).Row {
					t.Errorf("%s/%s: filtering twice changed trip %d", month, day, i)
				}
			}
		}
	}

	if full.Len() != 6 {
		t.Errorf("Filter must not modify the source dataset, got %d trips", full.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	loader := NewLoader(map[city.City]string{
		city.Chicago:     chicagoFile,
		city.NewYorkCity: filepath.Join(t.TempDir(), "missing.csv"),
	})

	cases := []struct {
		name             string
		city, month, day string
		want             error
	}{
		{"unknown city", "boston", "all", "all", city.ErrUnknownCity},
		{"invalid month", "chicago", "july", "all", filter.ErrInvalidMonth},
		{"invalid day", "chicago", "all", "funday", filter.ErrInvalidDay},
		{"city not configured", "washington", "all", "all", ErrCityNotConfigured},
		{"missing file", "new york city", "all", "all", ErrReadingSource},
	}
	for _, tc := range cases {
		ds, err := loader.Load(tc.city, tc.month, tc.day)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
		if ds != nil {
			t.Errorf("%s: no dataset should be returned", tc.name)
		}
	}
}

func TestParseInvalidData(t *testing.T) {
	header := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"
	valid := "2017-01-01 00:07:57,2017-01-01 00:20:53,776,A,B,Subscriber,Male,1990\n"

	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"bad timestamp", header + valid + "01/02/2017 10:00,2017-01-02 10:10:00,600,A,B,Customer,,\n", ErrInvalidTimestamp},
		{"missing timestamp", header + valid + ",2017-01-02 10:10:00,600,A,B,Customer,,\n", ErrInvalidTimestamp},
		{"negative duration", header + valid + "2017-01-02 10:00:00,2017-01-02 10:10:00,-5,A,B,Customer,,\n", ErrInvalidDuration},
		{"missing duration", header + valid + "2017-01-02 10:00:00,2017-01-02 10:10:00,,A,B,Customer,,\n", ErrInvalidDuration},
		{"missing start station", header + valid + "2017-01-02 10:00:00,2017-01-02 10:10:00,600,,B,Customer,,\n", ErrMissingField},
		{"missing end station", header + valid + "2017-01-02 10:00:00,2017-01-02 10:10:00,600,A,,Customer,,\n", ErrMissingField},
		{"bad birth year", header + valid + "2017-01-02 10:00:00,2017-01-02 10:10:00,600,A,B,Customer,,19x0\n", ErrInvalidBirthYear},
		{"missing column", "Start Time,Trip Duration,Start Station,User Type\n2017-01-02 10:00:00,600,A,Customer\n", ErrMissingColumn},
	}
	for _, tc := range cases {
		ds, err := Parse(city.Chicago, strings.NewReader(tc.content))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
		if ds != nil {
			t.Errorf("%s: a partial dataset was returned", tc.name)
		}
	}
}

func TestLoadCityRejectsBadFile(t *testing.T) {
	path := writeCSV(t, "Start Time,Trip Duration,Start Station,End Station,User Type\n"+
		"2017-01-02 10:00:00,600,A,B,Customer\n"+
		"not a date,600,A,B,Customer\n")
	loader := NewLoader(map[city.City]string{city.Washington: path})

	ds, err := loader.LoadCity(city.Washington)
	if !errors.Is(err, ErrInvalidTripData) {
		t.Errorf("LoadCity: got %v, want ErrInvalidTripData", err)
	}
	if ds != nil {
		t.Error("LoadCity: a partial dataset was returned")
	}
}

func TestParseAcceptsFractionalSeconds(t *testing.T) {
	content := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-02 10:00:00.250,600,A,B,\n"
	ds, err := Parse(city.Washington, strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if ds.Trip(0).Hour != 10 {
		t.Errorf("Hour: got %d, want 10", ds.Trip(0).Hour)
	}
	if ds.Trip(0).UserType != "" {
		t.Errorf("UserType: got %q, want empty", ds.Trip(0).UserType)
	}
}

func TestRows(t *testing.T) {
	ds, err := testLoader().Load("chicago", "all", "all")
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}

	page, ok := ds.Rows(0, 5)
	if !ok || page.Nrow() != 5 {
		t.Fatalf("Rows(0, 5): got %d rows %v, want 5", page.Nrow(), ok)
	}

	page, ok = ds.Rows(5, 5)
	if !ok || page.Nrow() != 1 {
		t.Fatalf("Rows(5, 5): got %d rows %v, want 1", page.Nrow(), ok)
	}

	if _, ok = ds.Rows(6, 5); ok {
		t.Error("Rows(6, 5): there should be no rows left")
	}
}

func TestRowsOfFilteredDataset(t *testing.T) {
	ds, err := testLoader().Load("chicago", "march", "all")
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}

	page, ok := ds.Rows(0, 5)
	if !ok || page.Nrow() != 2 {
		t.Fatalf("Rows: got %d rows %v, want 2", page.Nrow(), ok)
	}
	startTimes := page.Col("Start Time").Records()
	if startTimes[0] != "2017-03-06 08:00:00" || startTimes[1] != "2017-03-13 09:30:00" {
		t.Errorf("Rows: got start times %v", startTimes)
	}
}

func TestRowsWithoutSource(t *testing.T) {
	full, err := testLoader().LoadCity(city.Washington)
	if err != nil {
		t.Fatalf("LoadCity: unexpected error %v", err)
	}
	trips := make([]trip.TripRecord, 0)
	for i := 0; i < full.Len(); i++ {
		trips = append(trips, full.Trip(i))
	}
	ds := NewDataset(city.Washington, full.Schema(), trips)

	page, ok := ds.Rows(2, 5)
	if !ok || page.Nrow() != 2 {
		t.Fatalf("Rows: got %d rows %v, want 2", page.Nrow(), ok)
	}
	stations := page.Col("Start Station").Records()
	if stations[0] != "14th & Belmont St NW" || stations[1] != "15th & K St NW" {
		t.Errorf("Rows: got start stations %v", stations)
	}
}

func TestParseHeaderWithoutTrips(t *testing.T) {
	content := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"
	ds, err := Parse(city.NewYorkCity, strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if !ds.IsEmpty() {
		t.Errorf("Len: got %d, want 0", ds.Len())
	}
	if !ds.Schema().HasGender || !ds.Schema().HasBirthYear {
		t.Errorf("Schema: got %+v, want gender and birth year", ds.Schema())
	}
	if _, ok := ds.Rows(0, 5); ok {
		t.Error("Rows: an empty dataset has no rows")
	}

	if _, err = Parse(city.NewYorkCity, strings.NewReader("Start Time,User Type\n")); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("header without required columns: got %v, want ErrMissingColumn", err)
	}
}

func TestParseKeepsNAValues(t *testing.T) {
	content := "Start Time,Trip Duration,Start Station,End Station,User Type,Gender\n" +
		"2017-01-02 10:00:00,600,NA,B,NA,NaN\n"
	ds, err := Parse(city.Chicago, strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}

	tripRecord := ds.Trip(0)
	if tripRecord.StartStation != "NA" || tripRecord.UserType != "NA" {
		t.Errorf("got station %q and user type %q, want NA", tripRecord.StartStation, tripRecord.UserType)
	}
	if tripRecord.Gender != "" {
		t.Errorf("Gender: got %q, want blank", tripRecord.Gender)
	}
}
