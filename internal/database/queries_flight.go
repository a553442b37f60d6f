// Package database provides the read-only query layer over the flights table.
//
// FILE: queries_flight.go
// PURPOSE: Route search. The ORDER BY column comes from a fixed lookup table
// keyed by SortField; caller text never reaches the SQL string.
//
// KEY FUNCTIONS:
// - SearchFlights: Listings for one source/destination pair
// - ParseSortField: Maps user input to a SortField
//
// RELATED FILES:
// - queries.go: Base Queries struct
// - scanners.go: scanFlight
package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/willfong/flight-analytics/internal/models"
)

// SortField selects the ordering of route search results
type SortField int

const (
	SortByPrice SortField = iota + 1

	// SortByDuration orders by the Duration text column, so the order is
	// lexical: "10h" sorts before "2h 50m".
	SortByDuration

	SortByDepartureTime
)

// sortColumns is the allow-list of ORDER BY columns
var sortColumns = map[SortField]string{
	SortByPrice:         "Price",
	SortByDuration:      "Duration",
	SortByDepartureTime: "Dep_time",
}

// sortAliases maps accepted user spellings to a SortField
var sortAliases = map[string]SortField{
	"price":          SortByPrice,
	"duration":       SortByDuration,
	"dep_time":       SortByDepartureTime,
	"departure":      SortByDepartureTime,
	"departure_time": SortByDepartureTime,
	"departuretime":  SortByDepartureTime,
}

// SortFields lists the valid fields in display order
func SortFields() []SortField {
	return []SortField{SortByPrice, SortByDuration, SortByDepartureTime}
}

// ParseSortField maps user input (case-insensitive) to a SortField.
// An empty string selects SortByPrice.
func ParseSortField(s string) (SortField, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortByPrice, nil
	}
	if f, ok := sortAliases[s]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q (valid: price, duration, dep_time)", ErrInvalidSortField, s)
}

// Column returns the ORDER BY column for f
func (f SortField) Column() (string, error) {
	col, ok := sortColumns[f]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidSortField, int(f))
	}
	return col, nil
}

// Valid reports whether f is in the allow-list
func (f SortField) Valid() bool {
	_, ok := sortColumns[f]
	return ok
}

func (f SortField) String() string {
	switch f {
	case SortByPrice:
		return "price"
	case SortByDuration:
		return "duration"
	case SortByDepartureTime:
		return "dep_time"
	default:
		return fmt.Sprintf("SortField(%d)", int(f))
	}
}

// SearchFlights returns all listings from source to destination ordered
// ascending by sort. An invalid sort is rejected before any query runs and
// the error is ErrInvalidSortField rather than ErrQuery.
func (q *Queries) SearchFlights(ctx context.Context, source, destination string, sort SortField) ([]models.FlightRecord, error) {
	const op = "search flights"

	flights := make([]models.FlightRecord, 0)

	column, err := sort.Column()
	if err != nil {
		return flights, err
	}

	query := `
		SELECT Airline, Source, Destination, Route, Dep_time, Duration, Price, Date_of_Journey
		FROM ` + flightsTable + `
		WHERE Source = ? AND Destination = ?
		ORDER BY ` + column + ` ASC`

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := q.pool.QueryContext(ctx, query, source, destination)
	if err != nil {
		return flights, q.fail(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return make([]models.FlightRecord, 0), q.fail(op, err)
		}
		flights = append(flights, *f)
	}
	if err := rows.Err(); err != nil {
		return make([]models.FlightRecord, 0), q.fail(op, err)
	}

	q.logger.Debug("flights searched", "source", source, "destination", destination, "sort", sort.String(), "rows", len(flights))
	return flights, nil
}
