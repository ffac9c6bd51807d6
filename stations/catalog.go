package stations

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/city"
	"bikeshare/utils"
)

const (
	nameColumn      = "name"
	latitudeColumn  = "latitude"
	longitudeColumn = "longitude"
)

// Station struct that contains the location of a station
type Station struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Catalog contains the known stations of a city, indexed by name
type Catalog struct {
	stations map[string]Station
}

// Catalogs maps each city to its station catalog. Cities without a catalog are absent.
type Catalogs map[city.City]*Catalog

func NewCatalog(stations []Station) *Catalog {
	catalog := &Catalog{stations: make(map[string]Station, len(stations))}
	for _, station := range stations {
		catalog.stations[station.Name] = station
	}
	return catalog
}

// LoadCatalog reads a stations file with the columns name, latitude and longitude
func LoadCatalog(path string) (*Catalog, error) {
	stationsFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening stations file %s: %w", path, err)
	}
	defer func(stationsFile *os.File) {
		_ = stationsFile.Close()
	}(stationsFile)

	return ReadCatalog(stationsFile)
}

// ReadCatalog parses stations from a CSV reader. The header is required.
func ReadCatalog(reader io.Reader) (*Catalog, error) {
	frame, names, err := utils.ReadStringCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStationData, err.Error())
	}

	columnNames := make(map[string]string, len(names))
	for _, name := range names {
		columnNames[strings.ToLower(strings.TrimSpace(name))] = name
	}
	for _, column := range []string{nameColumn, latitudeColumn, longitudeColumn} {
		if _, ok := columnNames[column]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", ErrInvalidStationData, column)
		}
	}

	if frame == nil {
		return NewCatalog(nil), nil
	}

	stationNames := frame.Col(columnNames[nameColumn]).Records()
	latitudes := frame.Col(columnNames[latitudeColumn]).Records()
	longitudes := frame.Col(columnNames[longitudeColumn]).Records()

	stations := make([]Station, 0, frame.Nrow())
	for row := 0; row < frame.Nrow(); row++ {
		station, err := parseStation(stationNames[row], latitudes[row], longitudes[row])
		if err != nil {
			// line 1 is the header
			return nil, fmt.Errorf("line %d: %w", row+2, err)
		}
		stations = append(stations, station)
	}

	return NewCatalog(stations), nil
}

func parseStation(name string, latitudeStr string, longitudeStr string) (Station, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == utils.NaNMarker {
		return Station{}, fmt.Errorf("%w: empty name", ErrInvalidStationData)
	}

	latitude, err := parseCoordinate(latitudeStr, 90)
	if err != nil {
		return Station{}, fmt.Errorf("%w: latitude of %s", ErrInvalidCoordinate, name)
	}

	longitude, err := parseCoordinate(longitudeStr, 180)
	if err != nil {
		return Station{}, fmt.Errorf("%w: longitude of %s", ErrInvalidCoordinate, name)
	}

	return Station{Name: name, Latitude: latitude, Longitude: longitude}, nil
}

// parseCoordinate parses a value in degrees that must be within [-limit, limit]
func parseCoordinate(value string, limit float64) (float64, error) {
	degrees, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(degrees) || degrees < -limit || degrees > limit {
		return 0, ErrInvalidCoordinate
	}
	return degrees, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.stations)
}

func (c *Catalog) Get(name string) (Station, bool) {
	if c == nil {
		return Station{}, false
	}
	station, ok := c.stations[name]
	return station, ok
}

// Distance returns the great-circle distance in kilometers between two stations.
// The bool is false if any of the stations is unknown.
func (c *Catalog) Distance(from string, to string) (float64, bool) {
	fromStation, ok := c.Get(from)
	if !ok {
		return 0, false
	}
	toStation, ok := c.Get(to)
	if !ok {
		return 0, false
	}

	_, km := haversine.Distance(
		haversine.Coord{Lat: fromStation.Latitude, Lon: fromStation.Longitude},
		haversine.Coord{Lat: toStation.Latitude, Lon: toStation.Longitude},
	)
	return km, true
}

// For returns the catalog of c, or nil if there is none
func (cs Catalogs) For(c city.City) *Catalog {
	if cs == nil {
		return nil
	}
	return cs[c]
}
