// Package analytics turns query layer results into the view models shown by
// the dashboard, the route search and the charts. It validates user input
// and carries the fail-soft contract through as an Unavailable flag.
package analytics

import (
	"context"
	"log/slog"
	"math"

	"github.com/willfong/flight-analytics/internal/database"
	"github.com/willfong/flight-analytics/internal/models"
)

// Store is the query layer consumed by the service
type Store interface {
	ListCities(ctx context.Context) ([]string, error)
	SearchFlights(ctx context.Context, source, destination string, sort database.SortField) ([]models.FlightRecord, error)
	AirlineFrequency(ctx context.Context) (models.AirlineCounts, error)
	BusyAirports(ctx context.Context, limit int) ([]models.CityCount, error)
	DailyFlightCounts(ctx context.Context) ([]models.DateCount, error)
	CountFlights(ctx context.Context) (int64, error)
}

var _ Store = (*database.Queries)(nil)

// Service builds view models from a Store
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a service over store. A nil logger discards output.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Dashboard holds the summary counters
type Dashboard struct {
	TotalAirlines       int     `json:"total_airlines" yaml:"total_airlines"`
	TotalCities         int     `json:"total_cities" yaml:"total_cities"`
	TotalFlights        int64   `json:"total_flights" yaml:"total_flights"`
	AverageDailyFlights float64 `json:"average_daily_flights" yaml:"average_daily_flights"`
	Unavailable         bool    `json:"unavailable" yaml:"unavailable"`
}

// Dashboard computes the summary counters. A failed query contributes zero
// and marks the result unavailable.
func (s *Service) Dashboard(ctx context.Context) Dashboard {
	var d Dashboard

	airlines, err := s.store.AirlineFrequency(ctx)
	d.Unavailable = d.Unavailable || err != nil
	d.TotalAirlines = len(airlines)

	cities, err := s.store.ListCities(ctx)
	d.Unavailable = d.Unavailable || err != nil
	d.TotalCities = len(cities)

	total, err := s.store.CountFlights(ctx)
	d.Unavailable = d.Unavailable || err != nil
	d.TotalFlights = total

	days, err := s.store.DailyFlightCounts(ctx)
	d.Unavailable = d.Unavailable || err != nil
	d.AverageDailyFlights = AverageDaily(days)

	return d
}

// AverageDaily returns the mean listings per journey date rounded to two
// decimals, or 0 when there are no dates.
func AverageDaily(days []models.DateCount) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum int64
	for _, d := range days {
		sum += d.Count
	}
	return round2(float64(sum) / float64(len(days)))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
