// Package database provides the read-only query layer over the flights table.
//
// FILE: queries_city.go
// PURPOSE: City listing. A city is any value appearing as Source or
// Destination; the set is the union of both columns.
//
// KEY FUNCTIONS:
// - ListCities: Distinct city names, ascending
//
// RELATED FILES:
// - queries.go: Base Queries struct
package database

import (
	"context"
)

// ListCities returns the deduplicated, alphabetically sorted union of
// source and destination cities.
func (q *Queries) ListCities(ctx context.Context) ([]string, error) {
	const op = "list cities"

	query := `
		SELECT Source AS city FROM ` + flightsTable + ` WHERE Source IS NOT NULL AND Source <> ''
		UNION
		SELECT Destination AS city FROM ` + flightsTable + ` WHERE Destination IS NOT NULL AND Destination <> ''
		ORDER BY city`

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	cities := make([]string, 0)

	rows, err := q.pool.QueryContext(ctx, query)
	if err != nil {
		return cities, q.fail(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return make([]string, 0), q.fail(op, err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return make([]string, 0), q.fail(op, err)
	}

	return cities, nil
}
