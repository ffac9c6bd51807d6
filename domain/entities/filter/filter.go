package filter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// All is the sentinel that disables the month or the day filter
const All = "all"

var (
	// Months are the months covered by the datasets. A month number is its index + 1.
	Months = []string{"january", "february", "march", "april", "may", "june"}
	// Days are the accepted weekday names
	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Criteria selects which trips of a city are analyzed
// + City: city to analyze. Always required
// + Month: lowercase month name or All
// + Day: lowercase weekday name or All
type Criteria struct {
	City  city.City
	Month string
	Day   string
}

// NewCriteria validates the raw user values and builds a Criteria
func NewCriteria(cityName string, month string, day string) (Criteria, error) {
	c, err := city.Parse(cityName)
	if err != nil {
		return Criteria{}, err
	}

	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return Criteria{}, err
	}

	parsedDay, err := ParseDay(day)
	if err != nil {
		return Criteria{}, err
	}

	return Criteria{City: c, Month: parsedMonth, Day: parsedDay}, nil
}

// ParseMonth normalizes month and checks that it is a known month or All
func ParseMonth(month string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(month))
	if normalized == All || utils.ContainsString(normalized, Months) {
		return normalized, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMonth, month)
}

// ParseDay normalizes day and checks that it is a known weekday or All
func ParseDay(day string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(day))
	if normalized == All || utils.ContainsString(normalized, Days) {
		return normalized, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, day)
}

// MonthNumber returns the 1-based month number. The bool is false when the month filter is disabled.
func (c Criteria) MonthNumber() (int, bool) {
	idx := slices.Index(Months, c.Month)
	if idx < 0 {
		return 0, false
	}
	return idx + 1, true
}

// Weekday returns the title-cased weekday name, e.g. Monday. The bool is false when the day filter is disabled.
func (c Criteria) Weekday() (string, bool) {
	if c.Day == "" || c.Day == All {
		return "", false
	}
	return cases.Title(language.English).String(c.Day), true
}

// IsEmpty returns true when neither the month nor the day restricts the data
func (c Criteria) IsEmpty() bool {
	_, hasMonth := c.MonthNumber()
	_, hasDay := c.Weekday()
	return !hasMonth && !hasDay
}

// Matches returns true if the trip satisfies the month and day filters. City is not checked.
func (c Criteria) Matches(tripRecord trip.TripRecord) bool {
	if month, ok := c.MonthNumber(); ok && tripRecord.Month != month {
		return false
	}
	if weekday, ok := c.Weekday(); ok && !strings.EqualFold(tripRecord.Weekday, weekday) {
		return false
	}
	return true
}

func (c Criteria) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", c.City, c.Month, c.Day)
}
