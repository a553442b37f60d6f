package analytics

import (
	"context"

	"github.com/willfong/flight-analytics/internal/models"
)

// AirlineShare is one slice of the market-share chart
type AirlineShare struct {
	Airline string  `json:"airline" yaml:"airline"`
	Count   int64   `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// AirlineShareReport backs the airline market share chart
type AirlineShareReport struct {
	Total       int64          `json:"total" yaml:"total"`
	Airlines    []AirlineShare `json:"airlines" yaml:"airlines"`
	Unavailable bool           `json:"unavailable" yaml:"unavailable"`
}

// AirlineShare returns listings per airline with each airline's share of
// the total.
func (s *Service) AirlineShare(ctx context.Context) AirlineShareReport {
	counts, err := s.store.AirlineFrequency(ctx)

	report := AirlineShareReport{
		Total:       counts.Total(),
		Airlines:    make([]AirlineShare, 0, len(counts)),
		Unavailable: err != nil,
	}
	for _, c := range counts {
		share := AirlineShare{Airline: c.Airline, Count: c.Count}
		if report.Total > 0 {
			share.Percent = round2(float64(c.Count) * 100 / float64(report.Total))
		}
		report.Airlines = append(report.Airlines, share)
	}
	return report
}

// AirportReport backs the busiest airports chart
type AirportReport struct {
	Airports    []models.CityCount `json:"airports" yaml:"airports"`
	Unavailable bool               `json:"unavailable" yaml:"unavailable"`
}

// BusyAirports returns the busiest cities, at most limit when limit > 0
func (s *Service) BusyAirports(ctx context.Context, limit int) AirportReport {
	airports, err := s.store.BusyAirports(ctx, limit)
	if airports == nil {
		airports = make([]models.CityCount, 0)
	}
	return AirportReport{Airports: airports, Unavailable: err != nil}
}

// DailyReport backs the daily flight trend chart
type DailyReport struct {
	Days        []models.DateCount `json:"days" yaml:"days"`
	Average     float64            `json:"average" yaml:"average"`
	Unavailable bool               `json:"unavailable" yaml:"unavailable"`
}

// DailyTrend returns listings per journey date in calendar order
func (s *Service) DailyTrend(ctx context.Context) DailyReport {
	days, err := s.store.DailyFlightCounts(ctx)
	if days == nil {
		days = make([]models.DateCount, 0)
	}
	return DailyReport{Days: days, Average: AverageDaily(days), Unavailable: err != nil}
}

// About is the static product description
type About struct {
	Title    string   `json:"title" yaml:"title"`
	Summary  string   `json:"summary" yaml:"summary"`
	Features []string `json:"features" yaml:"features"`
}

// AboutInfo returns the static product description
func AboutInfo() About {
	return About{
		Title:   "Flight Analytics Dashboard",
		Summary: "Insights into historical flight listings and fares, backed by MySQL.",
		Features: []string{
			"Flight searches between any two cities",
			"Price analysis and comparisons",
			"Airline market share",
			"Airport traffic analysis",
			"Daily flight trends",
		},
	}
}
