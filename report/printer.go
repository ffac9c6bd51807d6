package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/stats"
)

const (
	NoDataMessage             = "No data for the selected filters."
	GenderNotAvailableMessage = "Gender data is not available for this city."
	BirthNotAvailableMessage  = "Birth year data is not available for this city."
	NoBirthYearMessage        = "No birth year data for the selected filters."
)

var separator = strings.Repeat("-", 40)

// Printer writes the statistics as human-readable text
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

func (p *Printer) PrintSeparator() {
	p.Println(separator)
}

func (p *Printer) PrintTimeStats(result stats.TimeStats, elapsed time.Duration) {
	p.Println("\nCalculating The Most Frequent Times of Travel...")
	p.Println()
	if result.Empty {
		p.Println(NoDataMessage)
	} else {
		p.Printf("Most popular month: %s\n", time.Month(result.PopularMonth))
		p.Printf("Most popular day: %s\n", result.PopularDay)
		p.Printf("Most frequent start hour: %d\n", result.PopularHour)
	}
	p.printElapsed(elapsed)
}

func (p *Printer) PrintStationStats(result stats.StationStats, elapsed time.Duration) {
	p.Println("\nCalculating The Most Popular Stations and Trip...")
	p.Println()
	if result.Empty {
		p.Println(NoDataMessage)
	} else {
		p.Printf("Most common start station: %s\n", result.PopularStart)
		p.Printf("Most common end station: %s\n", result.PopularEnd)
		p.Printf("Most frequent route: %s (%d trips)\n", result.PopularRoute.Route, result.PopularRoute.Count)
		if result.RouteDistanceKm != nil {
			p.Printf("Route distance: %.2f km\n", *result.RouteDistanceKm)
		}
	}
	p.printElapsed(elapsed)
}

func (p *Printer) PrintDurationStats(result stats.DurationStats, elapsed time.Duration) {
	p.Println("\nCalculating Trip Duration...")
	p.Println()
	if result.Empty {
		p.Println(NoDataMessage)
	} else {
		p.Printf("Total travel time: %s seconds (%s)\n", formatSeconds(result.Total), humanDuration(result.Total))
		p.Printf("Mean travel time: %s seconds (%s)\n", formatSeconds(result.Mean), humanDuration(result.Mean))
	}
	p.printElapsed(elapsed)
}

func (p *Printer) PrintUserStats(result stats.UserStats, elapsed time.Duration) {
	p.Println("\nCalculating User Stats...")
	p.Println()

	if result.Empty {
		p.Println(NoDataMessage)
	} else {
		p.Println("User type distribution:")
		p.printDistribution(result.UserTypes)
	}

	p.Println()
	switch {
	case !result.Gender.Available:
		p.Println(GenderNotAvailableMessage)
	case result.Empty:
		p.Println("Gender distribution: " + NoDataMessage)
	default:
		p.Println("Gender distribution:")
		p.printDistribution(result.Gender.Counts)
	}

	p.Println()
	switch {
	case !result.BirthYear.Available:
		p.Println(BirthNotAvailableMessage)
	case result.Empty:
		p.Println("Birth year: " + NoDataMessage)
	case result.BirthYear.Empty:
		p.Println(NoBirthYearMessage)
	default:
		p.Printf("Earliest birth year: %d\n", result.BirthYear.Earliest)
		p.Printf("Most recent birth year: %d\n", result.BirthYear.MostRecent)
		p.Printf("Most common birth year: %d\n", result.BirthYear.MostCommon)
	}
	p.printElapsed(elapsed)
}

// PrintRows writes every row and column of a page of raw rows as an aligned table
func (p *Printer) PrintRows(rows dataframe.DataFrame) {
	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, record := range rows.Records() {
		_, _ = fmt.Fprintln(writer, strings.Join(record, "\t"))
	}
	_ = writer.Flush()
}

func (p *Printer) printDistribution(frequencies []tripcounter.Frequency[string]) {
	if len(frequencies) == 0 {
		p.Println("  (no values)")
		return
	}
	for _, frequency := range frequencies {
		p.Printf("  %-12s %d\n", frequency.Value, frequency.Count)
	}
}

func (p *Printer) printElapsed(elapsed time.Duration) {
	p.Printf("\nThis took %s seconds.\n", formatSeconds(elapsed.Seconds()))
	p.PrintSeparator()
}
