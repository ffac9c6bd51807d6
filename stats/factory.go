package stats

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/stations"
)

const (
	MemoryEngineType = "memory"
	SQLiteEngineType = "sqlite"
)

// Engine computes the four groups of statistics over a Dataset.
// The statistics never modify the Dataset and can run in any order.
// Close releases whatever the engine keeps between calls.
type Engine interface {
	GetType() string
	TimeStats(ds *dataset.Dataset) (TimeStats, error)
	StationStats(ds *dataset.Dataset) (StationStats, error)
	DurationStats(ds *dataset.Dataset) (DurationStats, error)
	UserStats(ds *dataset.Dataset) (UserStats, error)
	Close() error
}

// NewEngine initialize an engine of some type.
// Possible engine types are: memory, sqlite. An empty type means memory.
func NewEngine(engineType string, catalogs stations.Catalogs) (Engine, error) {
	if engineType == "" || engineType == MemoryEngineType {
		return NewMemoryEngine(catalogs), nil
	}

	if engineType == SQLiteEngineType {
		return NewSQLiteEngine(catalogs), nil
	}

	return nil, fmt.Errorf("[method: NewEngine][status: error] %w: %s", ErrInvalidEngineType, engineType)
}

// routeDistance returns the distance of route if the city has coordinates for both stations
func routeDistance(catalogs stations.Catalogs, ds *dataset.Dataset, route PopularRoute) *float64 {
	km, ok := catalogs.For(ds.City()).Distance(route.Route.Start, route.Route.End)
	if !ok {
		return nil
	}
	return &km
}
