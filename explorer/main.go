package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/entities/city"
	"bikeshare/explorer/config"
	"bikeshare/stations"
	"bikeshare/stats"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

// loadCatalogs reads the stations file of each city that has one. Cities whose file
// cannot be read are analyzed without route distances.
func loadCatalogs(stationSources map[city.City]string) stations.Catalogs {
	catalogs := make(stations.Catalogs)
	for c, path := range stationSources {
		catalog, err := stations.LoadCatalog(path)
		if err != nil {
			log.Warnf("[explorer] error loading stations of %s, route distances disabled: %s", c, err.Error())
			continue
		}
		log.Debugf("[explorer] %d stations loaded for %s", catalog.Len(), c)
		catalogs[c] = catalog
	}
	return catalogs
}

func main() {
	if err := InitLogger("INFO"); err != nil {
		log.Fatalf("%s", err)
		return
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[explorer] error loading config: %s", err.Error())
		return
	}

	if err = InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	engine, err := stats.NewEngine(explorerConfig.Engine, loadCatalogs(explorerConfig.StationSources()))
	if err != nil {
		log.Fatalf("[explorer] error creating statistics engine: %s", err.Error())
		return
	}

	loader := dataset.NewLoader(explorerConfig.TripSources())
	explorer := NewExplorer(loader, engine, explorerConfig.PageSize, os.Stdin, os.Stdout)

	signalChannel := utils.GetSignalChannel()
	go func() {
		<-signalChannel
		log.Info("[explorer] interrupted, bye!")
		os.Exit(0)
	}()

	err = explorer.Run()
	if closeErr := engine.Close(); closeErr != nil {
		log.Errorf("[explorer] error closing statistics engine: %s", closeErr.Error())
	}
	if err != nil {
		log.Errorf("[explorer] %s", err.Error())
		os.Exit(1)
	}
	log.Debug("[explorer] finish main.go")
}
