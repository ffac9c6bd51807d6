package stats

import (
	"database/sql"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/stations"
)

const (
	sqliteDriver = "sqlite"
	sqliteMemory = ":memory:"

	createTripsTable = `CREATE TABLE trips (
		month         INTEGER NOT NULL,
		weekday       TEXT    NOT NULL,
		hour          INTEGER NOT NULL,
		start_station TEXT    NOT NULL,
		end_station   TEXT    NOT NULL,
		duration      REAL    NOT NULL,
		user_type     TEXT    NOT NULL,
		gender        TEXT,
		birth_year    INTEGER
	)`

	insertTrip = `INSERT INTO trips
		(month, weekday, hour, start_station, end_station, duration, user_type, gender, birth_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	routeModeQuery = `SELECT start_station, end_station, COUNT(*) AS counter FROM trips
		GROUP BY start_station, end_station
		ORDER BY counter DESC, start_station ASC, end_station ASC LIMIT 1`

	durationQuery = `SELECT COUNT(*), COALESCE(SUM(duration), 0) FROM trips`

	birthYearRangeQuery = `SELECT MIN(birth_year), MAX(birth_year) FROM trips WHERE birth_year IS NOT NULL`
)

// SQLiteEngine computes the statistics with SQL over a private in-memory database.
// The database holds the trips of the last analyzed Dataset, so the four statistics of a
// session load the trips once. Ties are broken like in MemoryEngine: the lowest value wins.
type SQLiteEngine struct {
	catalogs stations.Catalogs

	mutex  sync.Mutex
	db     *sql.DB
	loaded *dataset.Dataset
}

func NewSQLiteEngine(catalogs stations.Catalogs) *SQLiteEngine {
	return &SQLiteEngine{catalogs: catalogs}
}

func (se *SQLiteEngine) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[engine: %s][method: %s][status: ERROR] %s: %s", SQLiteEngineType, method, message, err.Error())
	}
	return fmt.Sprintf("[engine: %s][method: %s][status: OK] %s", SQLiteEngineType, method, message)
}

func (se *SQLiteEngine) GetType() string {
	return SQLiteEngineType
}

func (se *SQLiteEngine) TimeStats(ds *dataset.Dataset) (TimeStats, error) {
	if ds.IsEmpty() {
		return TimeStats{Empty: true}, nil
	}

	var result TimeStats
	err := se.withTrips(ds, func(db *sql.DB) error {
		if err := db.QueryRow(modeQuery("month", "")).Scan(&result.PopularMonth, new(int)); err != nil {
			return err
		}
		if err := db.QueryRow(modeQuery("weekday", "")).Scan(&result.PopularDay, new(int)); err != nil {
			return err
		}
		return db.QueryRow(modeQuery("hour", "")).Scan(&result.PopularHour, new(int))
	})
	if err != nil {
		log.Error(se.getLogMessage("TimeStats", "error querying trips", err))
		return TimeStats{}, fmt.Errorf("%w: %w", ErrQueryingTrips, err)
	}
	return result, nil
}

func (se *SQLiteEngine) StationStats(ds *dataset.Dataset) (StationStats, error) {
	if ds.IsEmpty() {
		return StationStats{Empty: true}, nil
	}

	var result StationStats
	err := se.withTrips(ds, func(db *sql.DB) error {
		if err := db.QueryRow(modeQuery("start_station", "")).Scan(&result.PopularStart, new(int)); err != nil {
			return err
		}
		if err := db.QueryRow(modeQuery("end_station", "")).Scan(&result.PopularEnd, new(int)); err != nil {
			return err
		}
		var route trip.Route
		if err := db.QueryRow(routeModeQuery).Scan(&route.Start, &route.End, &result.PopularRoute.Count); err != nil {
			return err
		}
		result.PopularRoute.Route = route
		return nil
	})
	if err != nil {
		log.Error(se.getLogMessage("StationStats", "error querying trips", err))
		return StationStats{}, fmt.Errorf("%w: %w", ErrQueryingTrips, err)
	}

	result.RouteDistanceKm = routeDistance(se.catalogs, ds, result.PopularRoute)
	return result, nil
}

func (se *SQLiteEngine) DurationStats(ds *dataset.Dataset) (DurationStats, error) {
	if ds.IsEmpty() {
		return DurationStats{Empty: true}, nil
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	err := se.withTrips(ds, func(db *sql.DB) error {
		var (
			counter int
			total   float64
		)
		if err := db.QueryRow(durationQuery).Scan(&counter, &total); err != nil {
			return err
		}
		accumulator.SetCounter(counter)
		accumulator.SetDuration(total)
		return nil
	})
	if err != nil {
		log.Error(se.getLogMessage("DurationStats", "error querying trips", err))
		return DurationStats{}, fmt.Errorf("%w: %w", ErrQueryingTrips, err)
	}

	return durationStatsFrom(accumulator), nil
}

func (se *SQLiteEngine) UserStats(ds *dataset.Dataset) (UserStats, error) {
	schema := ds.Schema()
	result := UserStats{
		Empty:     ds.IsEmpty(),
		Gender:    GenderStats{Available: schema.HasGender},
		BirthYear: BirthYearStats{Available: schema.HasBirthYear, Empty: true},
	}
	if ds.IsEmpty() {
		return result, nil
	}

	err := se.withTrips(ds, func(db *sql.DB) error {
		userTypes, err := distribution(db, "user_type")
		if err != nil {
			return err
		}
		result.UserTypes = userTypes

		if schema.HasGender {
			genders, err := distribution(db, "gender")
			if err != nil {
				return err
			}
			result.Gender.Counts = genders
		}

		if !schema.HasBirthYear {
			return nil
		}

		var earliest, mostRecent sql.NullInt64
		if err := db.QueryRow(birthYearRangeQuery).Scan(&earliest, &mostRecent); err != nil {
			return err
		}
		if !earliest.Valid {
			return nil
		}

		var mostCommon int
		if err := db.QueryRow(modeQuery("birth_year", "birth_year IS NOT NULL")).Scan(&mostCommon, new(int)); err != nil {
			return err
		}
		result.BirthYear = BirthYearStats{
			Available:  true,
			Earliest:   int(earliest.Int64),
			MostRecent: int(mostRecent.Int64),
			MostCommon: mostCommon,
		}
		return nil
	})
	if err != nil {
		log.Error(se.getLogMessage("UserStats", "error querying trips", err))
		return UserStats{}, fmt.Errorf("%w: %w", ErrQueryingTrips, err)
	}
	return result, nil
}

// withTrips runs query over a database with the trips of ds. The database is built the
// first time ds is seen and replaces the one of the previous Dataset.
func (se *SQLiteEngine) withTrips(ds *dataset.Dataset, query func(db *sql.DB) error) error {
	se.mutex.Lock()
	defer se.mutex.Unlock()

	if se.db == nil || se.loaded != ds {
		se.closeDB()
		db, err := openTrips(ds)
		if err != nil {
			return err
		}
		se.db, se.loaded = db, ds
		log.Debug(se.getLogMessage("withTrips", fmt.Sprintf("%d trips loaded", ds.Len()), nil))
	}

	return query(se.db)
}

// Close releases the database of the last analyzed Dataset
func (se *SQLiteEngine) Close() error {
	se.mutex.Lock()
	defer se.mutex.Unlock()
	se.closeDB()
	return nil
}

func (se *SQLiteEngine) closeDB() {
	if se.db == nil {
		return
	}
	if err := se.db.Close(); err != nil {
		log.Error(se.getLogMessage("closeDB", "error closing database", err))
	}
	se.db, se.loaded = nil, nil
}

// openTrips creates a new in-memory database with the trips of ds
func openTrips(ds *dataset.Dataset) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, sqliteMemory)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// every connection to :memory: is a different database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err = db.Exec(createTripsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating trips table: %w", err)
	}

	if err = insertTrips(db, ds); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func insertTrips(db *sql.DB, ds *dataset.Dataset) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(insertTrip)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error preparing insert: %w", err)
	}

	for i := 0; i < ds.Len(); i++ {
		tripRecord := ds.Trip(i)
		_, err = stmt.Exec(
			tripRecord.Month,
			tripRecord.Weekday,
			tripRecord.Hour,
			tripRecord.StartStation,
			tripRecord.EndStation,
			tripRecord.Duration,
			tripRecord.UserType,
			sql.NullString{String: tripRecord.Gender, Valid: tripRecord.Gender != ""},
			sql.NullInt64{Int64: int64(tripRecord.BirthYear), Valid: tripRecord.HasBirthYear()},
		)
		if err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("error inserting trip of row %d: %w", tripRecord.Row, err)
		}
	}

	if err = stmt.Close(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error closing insert statement: %w", err)
	}
	return tx.Commit()
}

// modeQuery returns the most frequent value of column and its count, lowest value first on ties.
// column and condition are never user input.
func modeQuery(column string, condition string) string {
	where := ""
	if condition != "" {
		where = "WHERE " + condition
	}
	return fmt.Sprintf(
		"SELECT %s, COUNT(*) AS counter FROM trips %s GROUP BY %s ORDER BY counter DESC, %s ASC LIMIT 1",
		column, where, column, column,
	)
}

// distribution counts the non-empty values of column, sorted by count descending and value ascending
func distribution(db *sql.DB, column string) ([]tripcounter.Frequency[string], error) {
	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) AS counter FROM trips WHERE %s IS NOT NULL AND %s != '' GROUP BY %s ORDER BY counter DESC, %s ASC",
		column, column, column, column, column,
	)
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	frequencies := make([]tripcounter.Frequency[string], 0)
	for rows.Next() {
		var frequency tripcounter.Frequency[string]
		if err := rows.Scan(&frequency.Value, &frequency.Count); err != nil {
			return nil, err
		}
		frequencies = append(frequencies, frequency)
	}
	return frequencies, rows.Err()
}
