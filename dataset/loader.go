package dataset

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
)

const loaderType = "loader"

// Loader reads the trips of a city from the source configured for it
type Loader struct {
	sources map[city.City]string
}

// NewLoader returns a Loader that reads each city from the given file path
func NewLoader(sources map[city.City]string) *Loader {
	copied := make(map[city.City]string, len(sources))
	for c, path := range sources {
		copied[c] = path
	}
	return &Loader{sources: copied}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// Load validates the raw city, month and day values, reads the city and applies the filters
func (l *Loader) Load(cityName string, month string, day string) (*Dataset, error) {
	criteria, err := filter.NewCriteria(cityName, month, day)
	if err != nil {
		return nil, err
	}
	return l.LoadCriteria(criteria)
}

// LoadCriteria reads the city of criteria and keeps only the trips matching its month and day
func (l *Loader) LoadCriteria(criteria filter.Criteria) (*Dataset, error) {
	full, err := l.LoadCity(criteria.City)
	if err != nil {
		return nil, err
	}

	filtered := full.Filter(criteria)
	log.Info(l.getLogMessage("LoadCriteria", fmt.Sprintf("%d of %d trips match %s", filtered.Len(), full.Len(), criteria), nil))
	return filtered, nil
}

// LoadCity reads every trip of c
func (l *Loader) LoadCity(c city.City) (*Dataset, error) {
	path, ok := l.sources[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCityNotConfigured, c)
	}

	sourceFile, err := os.Open(path)
	if err != nil {
		log.Error(l.getLogMessage("LoadCity", fmt.Sprintf("error opening %s", path), err))
		return nil, fmt.Errorf("%w: %w", ErrReadingSource, err)
	}

	defer func(sourceFile *os.File) {
		err := sourceFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(sourceFile)

	ds, err := Parse(c, sourceFile)
	if err != nil {
		log.Error(l.getLogMessage("LoadCity", fmt.Sprintf("error parsing %s", path), err))
		return nil, err
	}

	log.Debug(l.getLogMessage("LoadCity", fmt.Sprintf("%d trips read from %s, schema: %+v", ds.Len(), path, ds.Schema()), nil))
	return ds, nil
}
