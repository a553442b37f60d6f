// Package database provides the read-only query layer over the flights table.
//
// FILE: queries.go
// PURPOSE: Base Queries struct and constructor. This is the entry point for all
// database reads made by the dashboard, the CLI views and the HTTP API.
//
// KEY TYPES:
// - Queries: Main struct holding the shared pool and the logger
//
// RELATED FILES:
// - queries_city.go: City listing
// - queries_flight.go: Route search and the sort-field allow-list
// - queries_stats.go: Airline, airport and daily aggregates
// - scanners.go: Row scanning helper functions
// - errors.go: ErrQuery and ConnectionError
//
// Every operation runs one parameterized query and returns a non-nil
// collection. On failure the collection is empty and the error wraps
// ErrQuery, so callers may either display the empty result or report the
// failure.
package database

import (
	"context"
	"log/slog"
)

// flightsTable is the only table the query layer reads.
const flightsTable = "flights"

// Queries provides the analytics read operations
type Queries struct {
	pool   *Pool
	logger *slog.Logger
}

// NewQueries creates a new Queries instance. A nil logger discards output.
func NewQueries(pool *Pool, logger *slog.Logger) *Queries {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Queries{pool: pool, logger: logger}
}

// withTimeout applies the configured per-query deadline
func (q *Queries) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := q.pool.QueryTimeout(); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// fail logs a query failure at the operation boundary and wraps it
func (q *Queries) fail(op string, err error) error {
	q.logger.Warn("query failed", "op", op, "error", err)
	return queryError(op, err)
}
