package city

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// City identifies one of the supported bike-share systems
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// All contains the supported cities in the order they are offered to the user
var All = []City{Chicago, NewYorkCity, Washington}

// Parse returns the City that matches name. The comparison ignores case and surrounding spaces.
func Parse(name string) (City, error) {
	normalized := City(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range All {
		if c == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

// DisplayName returns the city name title-cased, e.g. New York City
func (c City) DisplayName() string {
	return cases.Title(language.English).String(string(c))
}

func (c City) String() string {
	return string(c)
}
