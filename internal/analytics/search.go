package analytics

import (
	"context"
	"slices"
	"strings"

	"github.com/willfong/flight-analytics/internal/database"
	"github.com/willfong/flight-analytics/internal/models"
)

// CityList is the set of known cities
type CityList struct {
	Cities      []string `json:"cities" yaml:"cities"`
	Unavailable bool     `json:"unavailable" yaml:"unavailable"`
}

// Cities returns every known city in ascending order
func (s *Service) Cities(ctx context.Context) CityList {
	cities, err := s.store.ListCities(ctx)
	if cities == nil {
		cities = make([]string, 0)
	}
	return CityList{Cities: cities, Unavailable: err != nil}
}

// Destinations returns cities with source removed, preserving order.
func Destinations(cities []string, source string) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if c != source {
			out = append(out, c)
		}
	}
	return out
}

// RouteQuery is a user route search request
type RouteQuery struct {
	Source      string
	Destination string
	SortBy      string
}

// RouteResult holds the matching flights and their price analysis
type RouteResult struct {
	Source       string                `json:"source" yaml:"source"`
	Destination  string                `json:"destination" yaml:"destination"`
	SortBy       string                `json:"sort_by" yaml:"sort_by"`
	Flights      []models.FlightRecord `json:"flights" yaml:"flights"`
	LowestPrice  int64                 `json:"lowest_price" yaml:"lowest_price"`
	AveragePrice int64                 `json:"average_price" yaml:"average_price"`
	Unavailable  bool                  `json:"unavailable" yaml:"unavailable"`
}

// Found reports whether any flight matched
func (r RouteResult) Found() bool {
	return len(r.Flights) > 0
}

// SearchRoute validates q and returns the matching flights. Validation
// failures are returned as *ValidationError and no query is made for them.
// Unknown cities are only detected when the city list can be loaded.
func (s *Service) SearchRoute(ctx context.Context, q RouteQuery) (RouteResult, error) {
	source := strings.TrimSpace(q.Source)
	destination := strings.TrimSpace(q.Destination)

	result := RouteResult{
		Source:      source,
		Destination: destination,
		Flights:     make([]models.FlightRecord, 0),
	}

	if source == "" {
		return result, &ValidationError{Field: "source", Reason: "city is required"}
	}
	if destination == "" {
		return result, &ValidationError{Field: "destination", Reason: "city is required"}
	}
	if source == destination {
		return result, &ValidationError{Field: "destination", Reason: "must differ from source"}
	}

	sort, err := database.ParseSortField(q.SortBy)
	if err != nil {
		return result, &ValidationError{Field: "sort", Reason: "must be one of price, duration, dep_time", Err: err}
	}
	result.SortBy = sort.String()

	cities, err := s.store.ListCities(ctx)
	if err == nil {
		if !slices.Contains(cities, source) {
			return result, &ValidationError{Field: "source", Reason: "unknown city " + source}
		}
		if !slices.Contains(cities, destination) {
			return result, &ValidationError{Field: "destination", Reason: "unknown city " + destination}
		}
	} else {
		s.logger.Debug("skipping city check", "error", err)
	}

	flights, err := s.store.SearchFlights(ctx, source, destination, sort)
	if flights != nil {
		result.Flights = flights
	}
	result.Unavailable = err != nil
	result.LowestPrice, result.AveragePrice = priceAnalysis(flights)

	return result, nil
}

// priceAnalysis returns the minimum and the truncated mean price
func priceAnalysis(flights []models.FlightRecord) (lowest, average int64) {
	if len(flights) == 0 {
		return 0, 0
	}
	lowest = flights[0].Price
	var sum int64
	for _, f := range flights {
		if f.Price < lowest {
			lowest = f.Price
		}
		sum += f.Price
	}
	return lowest, sum / int64(len(flights))
}
