package stats

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/stations"
)

// MemoryEngine computes the statistics by walking the trips of the dataset
type MemoryEngine struct {
	catalogs stations.Catalogs
}

func NewMemoryEngine(catalogs stations.Catalogs) *MemoryEngine {
	return &MemoryEngine{catalogs: catalogs}
}

func (me *MemoryEngine) getLogMessage(method string, message string) string {
	return fmt.Sprintf("[engine: %s][method: %s][status: OK] %s", MemoryEngineType, method, message)
}

func (me *MemoryEngine) GetType() string {
	return MemoryEngineType
}

// TimeStats returns the most common month, day of week and start hour
func (me *MemoryEngine) TimeStats(ds *dataset.Dataset) (TimeStats, error) {
	if ds.IsEmpty() {
		return TimeStats{Empty: true}, nil
	}

	months := tripcounter.NewTripCounter[int]()
	days := tripcounter.NewTripCounter[string]()
	hours := tripcounter.NewTripCounter[int]()
	for i := 0; i < ds.Len(); i++ {
		tripRecord := ds.Trip(i)
		months.UpdateCounter(tripRecord.Month)
		days.UpdateCounter(tripRecord.Weekday)
		hours.UpdateCounter(tripRecord.Hour)
	}

	month, _, _ := months.Mode()
	day, _, _ := days.Mode()
	hour, _, _ := hours.Mode()

	log.Debug(me.getLogMessage("TimeStats", fmt.Sprintf("%d trips counted", months.GetTotal())))
	return TimeStats{
		PopularMonth: month,
		PopularDay:   day,
		PopularHour:  hour,
	}, nil
}

// StationStats returns the most common start station, end station and route
func (me *MemoryEngine) StationStats(ds *dataset.Dataset) (StationStats, error) {
	if ds.IsEmpty() {
		return StationStats{Empty: true}, nil
	}

	starts := tripcounter.NewTripCounter[string]()
	ends := tripcounter.NewTripCounter[string]()
	routes := tripcounter.NewTripCounterFunc[trip.Route](trip.CompareRoutes)
	for i := 0; i < ds.Len(); i++ {
		tripRecord := ds.Trip(i)
		starts.UpdateCounter(tripRecord.StartStation)
		ends.UpdateCounter(tripRecord.EndStation)
		routes.UpdateCounter(tripRecord.GetRoute())
	}

	start, _, _ := starts.Mode()
	end, _, _ := ends.Mode()
	route, routeCount, _ := routes.Mode()

	result := StationStats{
		PopularStart: start,
		PopularEnd:   end,
		PopularRoute: PopularRoute{Route: route, Count: routeCount},
	}
	result.RouteDistanceKm = routeDistance(me.catalogs, ds, result.PopularRoute)

	log.Debug(me.getLogMessage("StationStats", fmt.Sprintf("%d distinct routes", routes.Len())))
	return result, nil
}

// DurationStats returns the total and mean trip duration
func (me *MemoryEngine) DurationStats(ds *dataset.Dataset) (DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for i := 0; i < ds.Len(); i++ {
		accumulator.UpdateAccumulator(ds.Trip(i).Duration)
	}
	return durationStatsFrom(accumulator), nil
}

// UserStats returns the user type distribution and, if the city records them, the gender
// distribution and the birth year stats
func (me *MemoryEngine) UserStats(ds *dataset.Dataset) (UserStats, error) {
	schema := ds.Schema()
	result := UserStats{
		Empty:     ds.IsEmpty(),
		Gender:    GenderStats{Available: schema.HasGender},
		BirthYear: BirthYearStats{Available: schema.HasBirthYear, Empty: true},
	}
	if ds.IsEmpty() {
		return result, nil
	}

	userTypes := tripcounter.NewTripCounter[string]()
	genders := tripcounter.NewTripCounter[string]()
	birthYears := tripcounter.NewTripCounter[int]()
	earliest, mostRecent := 0, 0
	for i := 0; i < ds.Len(); i++ {
		tripRecord := ds.Trip(i)
		if tripRecord.UserType != "" {
			userTypes.UpdateCounter(tripRecord.UserType)
		}

		if schema.HasGender && tripRecord.Gender != "" {
			genders.UpdateCounter(tripRecord.Gender)
		}

		if schema.HasBirthYear && tripRecord.HasBirthYear() {
			year := tripRecord.BirthYear
			if birthYears.GetTotal() == 0 || year < earliest {
				earliest = year
			}
			if birthYears.GetTotal() == 0 || year > mostRecent {
				mostRecent = year
			}
			birthYears.UpdateCounter(year)
		}
	}

	result.UserTypes = userTypes.Distribution()
	if schema.HasGender {
		result.Gender.Counts = genders.Distribution()
	}
	if mostCommon, _, ok := birthYears.Mode(); ok {
		result.BirthYear = BirthYearStats{
			Available:  true,
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: mostCommon,
		}
	}

	return result, nil
}

// Close does nothing, MemoryEngine holds no resources
func (me *MemoryEngine) Close() error {
	return nil
}

func durationStatsFrom(accumulator *durationaccumulator.DurationAccumulator) DurationStats {
	total, err := accumulator.GetTotalDuration()
	if err != nil {
		return DurationStats{Empty: true}
	}
	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return DurationStats{Empty: true}
	}
	return DurationStats{
		Count: accumulator.Counter,
		Total: total,
		Mean:  mean,
	}
}
