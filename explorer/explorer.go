package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/report"
	"bikeshare/stats"
	"bikeshare/utils"
)

type Explorer struct {
	loader   *dataset.Loader
	engine   stats.Engine
	pageSize int
	prompter *Prompter
	printer  *report.Printer
}

func NewExplorer(loader *dataset.Loader, engine stats.Engine, pageSize int, in io.Reader, out io.Writer) *Explorer {
	return &Explorer{
		loader:   loader,
		engine:   engine,
		pageSize: pageSize,
		prompter: NewPrompter(in, out),
		printer:  report.NewPrinter(out),
	}
}

// Run repeats analysis sessions until the user does not want to restart or the input is closed
func (e *Explorer) Run() error {
	for {
		err := e.runSession()
		if errors.Is(err, ErrInputClosed) {
			log.Debug("[explorer] input closed, finishing")
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := e.prompter.Ask(restartMessage)
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !utils.IsYes(restart) {
			return nil
		}
	}
}

func (e *Explorer) runSession() error {
	criteria, err := e.prompter.GetFilters()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := log.WithField("run", runID)
	logger.Infof("[explorer] analyzing %s with engine %s", criteria, e.engine.GetType())

	ds, err := e.loader.LoadCriteria(criteria)
	if err != nil {
		logger.Errorf("[explorer] error loading data: %s", err.Error())
		e.printer.Printf("Could not load the data of %s: %s\n", criteria.City.DisplayName(), err.Error())
		return nil
	}

	if err = e.analyze(ds); err != nil {
		logger.Errorf("[explorer] error computing statistics: %s", err.Error())
		e.printer.Printf("Could not compute the statistics: %s\n", err.Error())
		return nil
	}

	return e.showRawData(ds)
}

// analyze prints the four groups of statistics of ds
func (e *Explorer) analyze(ds *dataset.Dataset) error {
	start := time.Now()
	timeStats, err := e.engine.TimeStats(ds)
	if err != nil {
		return err
	}
	e.printer.PrintTimeStats(timeStats, time.Since(start))

	start = time.Now()
	stationStats, err := e.engine.StationStats(ds)
	if err != nil {
		return err
	}
	e.printer.PrintStationStats(stationStats, time.Since(start))

	start = time.Now()
	durationStats, err := e.engine.DurationStats(ds)
	if err != nil {
		return err
	}
	e.printer.PrintDurationStats(durationStats, time.Since(start))

	start = time.Now()
	userStats, err := e.engine.UserStats(ds)
	if err != nil {
		return err
	}
	e.printer.PrintUserStats(userStats, time.Since(start))
	return nil
}

// showRawData prints pageSize raw rows each time the user asks for them
func (e *Explorer) showRawData(ds *dataset.Dataset) error {
	question := fmt.Sprintf(rawDataMessage, e.pageSize)
	for offset := 0; ; offset += e.pageSize {
		answer, err := e.prompter.Ask(question)
		if err != nil {
			return err
		}
		if !utils.IsYes(answer) {
			return nil
		}

		rows, ok := ds.Rows(offset, e.pageSize)
		if !ok {
			e.printer.Println("There are no more rows to show.")
			return nil
		}
		e.printer.PrintRows(rows)
	}
}
