// Package database provides the read-only query layer over the flights table.
//
// FILE: scanners.go
// PURPOSE: Row scanning helper functions for converting database rows to model structs.
//
// KEY FUNCTIONS:
// - scanFlight: Scans a flights row
// - scanAirlineCount: Scans an airline/count pair
// - scanCityCount: Scans a city/count pair, flagging NULL or blank cities
// - scanDateCount: Scans a date/count pair
// - sortByJourneyDate: Orders daily counts by calendar date
//
// RELATED FILES:
// - queries_flight.go: Uses scanFlight
// - queries_stats.go: Uses scanAirlineCount, scanCityCount, scanDateCount, sortByJourneyDate
package database

import (
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/willfong/flight-analytics/internal/models"
)

// journeyDateLayouts are the Date_of_Journey spellings seen in flight-price datasets
var journeyDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02 15:04:05",
}

// rowScanner is satisfied by both *sql.Rows and *sql.Row
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlight(row rowScanner) (*models.FlightRecord, error) {
	f := &models.FlightRecord{}

	// Nullable fields need sql.Null* types for scanning
	var (
		airline     sql.NullString
		route       sql.NullString
		depTime     sql.NullString
		duration    sql.NullString
		price       sql.NullInt64
		journeyDate sql.NullString
	)

	err := row.Scan(
		&airline, &f.Source, &f.Destination, &route,
		&depTime, &duration, &price, &journeyDate,
	)
	if err != nil {
		return nil, err
	}

	// Convert nullable fields to their values (empty string/zero if NULL)
	f.Airline = airline.String
	f.Route = route.String
	f.DepartureTime = depTime.String
	f.Duration = duration.String
	f.Price = price.Int64
	f.DateOfJourney = journeyDate.String

	return f, nil
}

func scanAirlineCount(row rowScanner) (models.AirlineCount, error) {
	var (
		c       models.AirlineCount
		airline sql.NullString
	)
	if err := row.Scan(&airline, &c.Count); err != nil {
		return c, err
	}
	c.Airline = airline.String
	return c, nil
}

// scanCityCount reports ok=false for a NULL or blank city
func scanCityCount(row rowScanner) (models.CityCount, bool, error) {
	var (
		c    models.CityCount
		city sql.NullString
	)
	if err := row.Scan(&city, &c.Count); err != nil {
		return c, false, err
	}
	c.City = city.String
	return c, city.Valid && strings.TrimSpace(c.City) != "", nil
}

func scanDateCount(row rowScanner) (models.DateCount, error) {
	var (
		d    models.DateCount
		date sql.NullString
	)
	if err := row.Scan(&date, &d.Count); err != nil {
		return d, err
	}
	d.Date = date.String
	return d, nil
}

// parseJourneyDate tries every known layout
func parseJourneyDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range journeyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortByJourneyDate re-orders days chronologically when every date parses.
// Text ordering from the database is wrong for day-first layouts such as
// 24/03/2019; when any value is unparseable the database order is kept.
func sortByJourneyDate(days []models.DateCount) {
	parsed := make([]time.Time, len(days))
	for i, d := range days {
		t, ok := parseJourneyDate(d.Date)
		if !ok {
			return
		}
		parsed[i] = t
	}

	idx := make([]int, len(days))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return parsed[idx[a]].Before(parsed[idx[b]])
	})

	sorted := make([]models.DateCount, len(days))
	for i, j := range idx {
		sorted[i] = days[j]
	}
	copy(days, sorted)
}
