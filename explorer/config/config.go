package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bikeshare/domain/entities/city"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./explorer/config/config.yaml"
	defaultPageSize       = 5
	defaultLogLevel       = "INFO"

	configFileEnvVarName = "BIKESHARE_CONFIG"
	dataDirEnvVarName    = "BIKESHARE_DATA_DIR"
	engineEnvVarName     = "BIKESHARE_ENGINE"
	pageSizeEnvVarName   = "BIKESHARE_PAGE_SIZE"
	logLevelEnvVarName   = "LOG_LEVEL"
)

var (
	ErrUnknownCity       = errors.New("unknown city in config")
	ErrMissingCitySource = errors.New("city without trips file in config")
	ErrDuplicateCity     = errors.New("city configured more than once")
	ErrInvalidPageSize   = errors.New("invalid page size")
)

// CitySource contains the files of a city, relative to the data directory
// + TripsFile: CSV with the trips. Required
// + StationsFile: CSV with the station coordinates. Optional
type CitySource struct {
	TripsFile    string `yaml:"trips_file"`
	StationsFile string `yaml:"stations_file"`
}

type ExplorerConfig struct {
	DataDir  string                `yaml:"data_dir"`
	Engine   string                `yaml:"engine"`
	PageSize int                   `yaml:"page_size"`
	LogLevel string                `yaml:"log_level"`
	Cities   map[string]CitySource `yaml:"cities"`
}

// LoadConfig reads the .env file if there is one, then the yaml config file, and applies
// the environment overrides
func LoadConfig() (*ExplorerConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("[config] no .env file found, using system env vars")
	}

	configFilepath := os.Getenv(configFileEnvVarName)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}

	explorerConfig, err := LoadConfigFromFile(configFilepath)
	if err != nil {
		return nil, err
	}

	if err = explorerConfig.applyEnv(); err != nil {
		return nil, err
	}
	return explorerConfig, nil
}

// LoadConfigFromFile reads and validates a yaml config file. Environment variables are not read.
func LoadConfigFromFile(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if explorerConfig.PageSize == 0 {
		explorerConfig.PageSize = defaultPageSize
	}
	if explorerConfig.LogLevel == "" {
		explorerConfig.LogLevel = defaultLogLevel
	}

	if err = explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return &explorerConfig, nil
}

// Validate checks that every supported city, and only them, has a trips file.
// Each city must appear under a single key.
func (ec *ExplorerConfig) Validate() error {
	if ec.PageSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, ec.PageSize)
	}

	names := make(map[city.City]string, len(ec.Cities))
	for name := range ec.Cities {
		c, err := city.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownCity, name)
		}
		if previous, ok := names[c]; ok {
			return fmt.Errorf("%w: %q and %q", ErrDuplicateCity, previous, name)
		}
		names[c] = name
	}

	sources := ec.citySources()
	for _, c := range city.All {
		source, ok := sources[c]
		if !ok || source.TripsFile == "" {
			return fmt.Errorf("%w: %s", ErrMissingCitySource, c)
		}
	}
	return nil
}

// TripSources returns the path of the trips file of each city
func (ec *ExplorerConfig) TripSources() map[city.City]string {
	paths := make(map[city.City]string)
	for c, source := range ec.citySources() {
		paths[c] = ec.resolve(source.TripsFile)
	}
	return paths
}

// StationSources returns the path of the stations file of the cities that have one
func (ec *ExplorerConfig) StationSources() map[city.City]string {
	paths := make(map[city.City]string)
	for c, source := range ec.citySources() {
		if source.StationsFile != "" {
			paths[c] = ec.resolve(source.StationsFile)
		}
	}
	return paths
}

func (ec *ExplorerConfig) citySources() map[city.City]CitySource {
	sources := make(map[city.City]CitySource, len(ec.Cities))
	for name, source := range ec.Cities {
		c, err := city.Parse(name)
		if err != nil {
			continue
		}
		sources[c] = source
	}
	return sources
}

func (ec *ExplorerConfig) resolve(path string) string {
	if filepath.IsAbs(path) || ec.DataDir == "" {
		return path
	}
	return filepath.Join(ec.DataDir, path)
}

func (ec *ExplorerConfig) applyEnv() error {
	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		ec.DataDir = dataDir
	}
	if engine := os.Getenv(engineEnvVarName); engine != "" {
		ec.Engine = engine
	}
	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		ec.LogLevel = logLevel
	}
	if pageSize := os.Getenv(pageSizeEnvVarName); pageSize != "" {
		value, err := strconv.Atoi(pageSize)
		if err != nil || value <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPageSize, pageSize)
		}
		ec.PageSize = value
	}
	return nil
}
