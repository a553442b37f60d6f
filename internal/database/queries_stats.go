// Package database provides the read-only query layer over the flights table.
//
// FILE: queries_stats.go
// PURPOSE: Aggregate queries behind the dashboard and analytics charts. All
// aggregates are computed per request with GROUP BY; nothing is persisted.
//
// KEY FUNCTIONS:
// - AirlineFrequency: Listings per airline
// - BusyAirports: Appearances per city as source or destination
// - DailyFlightCounts: Listings per journey date
// - CountFlights: Total listings
//
// RELATED FILES:
// - queries.go: Base Queries struct
// - scanners.go: sortByJourneyDate
package database

import (
	"context"

	"github.com/willfong/flight-analytics/internal/models"
)

// AirlineFrequency returns the number of listings for each airline, ordered
// by airline name. The counts sum to the total number of records.
func (q *Queries) AirlineFrequency(ctx context.Context) (models.AirlineCounts, error) {
	const op = "airline frequency"

	query := `
		SELECT Airline, COUNT(*) AS count
		FROM ` + flightsTable + `
		GROUP BY Airline
		ORDER BY Airline`

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	counts := make(models.AirlineCounts, 0)

	rows, err := q.pool.QueryContext(ctx, query)
	if err != nil {
		return counts, q.fail(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanAirlineCount(rows)
		if err != nil {
			return make(models.AirlineCounts, 0), q.fail(op, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return make(models.AirlineCounts, 0), q.fail(op, err)
	}

	return counts, nil
}

// BusyAirports ranks cities by combined appearances as source or
// destination, so every record counts twice. Ties are broken by city name.
// NULL and empty cities are left out, as in ListCities.
// A limit of zero or less returns every city.
func (q *Queries) BusyAirports(ctx context.Context, limit int) ([]models.CityCount, error) {
	const op = "busy airports"

	query := `
		SELECT t.city, COUNT(*) AS count
		FROM (
			SELECT Source AS city FROM ` + flightsTable + ` WHERE Source IS NOT NULL AND Source <> ''
			UNION ALL
			SELECT Destination AS city FROM ` + flightsTable + ` WHERE Destination IS NOT NULL AND Destination <> ''
		) t
		GROUP BY t.city
		ORDER BY count DESC, t.city ASC`

	var args []any
	if limit > 0 {
		query += `
		LIMIT ?`
		args = append(args, limit)
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	cities := make([]models.CityCount, 0)

	rows, err := q.pool.QueryContext(ctx, query, args...)
	if err != nil {
		return cities, q.fail(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		c, ok, err := scanCityCount(rows)
		if err != nil {
			return make([]models.CityCount, 0), q.fail(op, err)
		}
		if ok {
			cities = append(cities, c)
		}
	}
	if err := rows.Err(); err != nil {
		return make([]models.CityCount, 0), q.fail(op, err)
	}

	return cities, nil
}

// DailyFlightCounts returns one entry per distinct journey date, ascending.
// Dates are grouped by exact string equality.
func (q *Queries) DailyFlightCounts(ctx context.Context) ([]models.DateCount, error) {
	const op = "daily flight counts"

	query := `
		SELECT Date_of_Journey, COUNT(*) AS count
		FROM ` + flightsTable + `
		GROUP BY Date_of_Journey
		ORDER BY Date_of_Journey`

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	days := make([]models.DateCount, 0)

	rows, err := q.pool.QueryContext(ctx, query)
	if err != nil {
		return days, q.fail(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDateCount(rows)
		if err != nil {
			return make([]models.DateCount, 0), q.fail(op, err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return make([]models.DateCount, 0), q.fail(op, err)
	}

	sortByJourneyDate(days)
	return days, nil
}

// CountFlights returns the total number of listings
func (q *Queries) CountFlights(ctx context.Context) (int64, error) {
	const op = "count flights"

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	var total int64
	row := q.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+flightsTable)
	if err := row.Scan(&total); err != nil {
		return 0, q.fail(op, err)
	}
	return total, nil
}
