package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/models"
	"github.com/willfong/flight-analytics/internal/ui"
	"gopkg.in/yaml.v3"
)

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	list := analytics.CityList{Cities: []string{}}

	err := render(&buf, "json", list, func() string { return "table" })

	require.NoError(t, err)
	assert.JSONEq(t, `{"cities":[],"unavailable":false}`, buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	d := analytics.Dashboard{TotalAirlines: 3, AverageDailyFlights: 1.5}

	require.NoError(t, render(&buf, "yaml", d, func() string { return "table" }))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got["total_airlines"])
	assert.Equal(t, 1.5, got["average_daily_flights"])
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, render(&buf, "table", nil, func() string { return "view" }))

	assert.Equal(t, "view\n", buf.String())
}

func TestDashboardViewEmptyDataset(t *testing.T) {
	out := dashboardView(ui.Plain(), analytics.Dashboard{})

	assert.Contains(t, out, "Average Daily Flights:   0.00")
	assert.NotContains(t, out, "[WARN]")
}

func TestDashboardViewUnavailable(t *testing.T) {
	out := dashboardView(ui.Plain(), analytics.Dashboard{Unavailable: true})

	assert.True(t, strings.HasPrefix(out, "[WARN] Some dashboard figures unavailable"))
}

func TestSearchViewNoFlights(t *testing.T) {
	out := searchView(ui.Plain(), analytics.RouteResult{
		Source:      "Delhi",
		Destination: "Cochin",
		Flights:     []models.FlightRecord{},
	}, "INR")

	assert.Contains(t, out, "=== Flights from Delhi to Cochin ===")
	assert.Contains(t, out, "No flights found for this route!")
}

func TestSearchViewUnavailable(t *testing.T) {
	out := searchView(ui.Plain(), analytics.RouteResult{
		Source:      "Delhi",
		Destination: "Cochin",
		Flights:     []models.FlightRecord{},
		Unavailable: true,
	}, "INR")

	assert.Contains(t, out, "Flight search unavailable")
	assert.NotContains(t, out, "No flights found")
}

func TestSearchViewTable(t *testing.T) {
	out := searchView(ui.Plain(), analytics.RouteResult{
		Source:      "Banglore",
		Destination: "New Delhi",
		Flights: []models.FlightRecord{
			{Airline: "IndiGo", Route: "BLR → DEL", DepartureTime: "22:20", Duration: "2h 50m", Price: 3897, DateOfJourney: "24/03/2019"},
			{Airline: "Air India", Route: "BLR → BOM → DEL", DepartureTime: "05:50", Duration: "7h 25m", Price: 13882, DateOfJourney: "1/05/2019"},
		},
		LowestPrice:  3897,
		AveragePrice: 8889,
	}, "INR")

	assert.Contains(t, out, "Lowest Price:")
	assert.Contains(t, out, "₹3,897")
	assert.Contains(t, out, "₹8,889")
	assert.Contains(t, out, "Price (₹)")
	assert.Contains(t, out, "Duration (hrs)")
	assert.Contains(t, out, "Departure Time")
	assert.Contains(t, out, "13,882")
	assert.Contains(t, out, "(2 rows)")
}

func TestSearchViewCurrencySymbol(t *testing.T) {
	out := searchView(ui.Plain(), analytics.RouteResult{
		Flights:     []models.FlightRecord{{Airline: "X", Price: 100}},
		LowestPrice: 100,
	}, "USD")

	assert.Contains(t, out, "Price ($)")
	assert.Contains(t, out, "$100")
}

func TestCitiesView(t *testing.T) {
	out := citiesView(ui.Plain(), analytics.CityList{Cities: []string{"Banglore", "Chennai"}})

	assert.Contains(t, out, "Banglore")
	assert.Contains(t, out, "(2 rows)")
}

func TestSelectedReports(t *testing.T) {
	assert.Equal(t, []string{"airlines", "airports", "daily"}, selectedReports(nil))
	assert.Equal(t, []string{"daily"}, selectedReports([]string{"daily"}))
}

func TestAnalyticsViewOnlyRequested(t *testing.T) {
	out := analyticsView(ui.Plain(), analyticsOutput{
		Airports: &analytics.AirportReport{Airports: []models.CityCount{{City: "Delhi", Count: 4}, {City: "Cochin", Count: 2}}},
	})

	assert.Contains(t, out, "Busiest Airports")
	assert.Contains(t, out, "Delhi")
	assert.NotContains(t, out, "Airline Frequency")
	assert.NotContains(t, out, "Flights per Day")
}

func TestAnalyticsViewAllReports(t *testing.T) {
	out := analyticsView(ui.Plain(), analyticsOutput{
		Airlines: &analytics.AirlineShareReport{
			Total:    3,
			Airlines: []analytics.AirlineShare{{Airline: "IndiGo", Count: 3, Percent: 100}},
		},
		Airports: &analytics.AirportReport{Airports: []models.CityCount{}, Unavailable: true},
		Daily:    &analytics.DailyReport{Days: []models.DateCount{}},
	})

	assert.Contains(t, out, "(100.00%)")
	assert.Contains(t, out, "Busiest airports unavailable")
	assert.Contains(t, out, "(no data)")
	assert.Contains(t, out, "Daily Average:")
}

func TestAnalyticsOutputOmitsUnrequested(t *testing.T) {
	var buf bytes.Buffer
	out := analyticsOutput{Daily: &analytics.DailyReport{Days: []models.DateCount{}}}

	require.NoError(t, render(&buf, "json", out, nil))

	assert.JSONEq(t, `{"daily":{"days":[],"average":0,"unavailable":false}}`, buf.String())
}

func TestAboutView(t *testing.T) {
	about := analytics.AboutInfo()

	out := aboutView(ui.Plain(), about)

	assert.Contains(t, out, about.Title)
	assert.Contains(t, out, "Features")
	for _, f := range about.Features {
		assert.Contains(t, out, f)
	}
}

func TestReadSchema(t *testing.T) {
	full, err := readSchema("full")
	require.NoError(t, err)
	assert.Contains(t, string(full), "CREATE TABLE IF NOT EXISTS flights")
	assert.Contains(t, string(full), "CREATE INDEX")

	tables, err := readSchema("tables")
	require.NoError(t, err)
	assert.NotContains(t, string(tables), "CREATE INDEX")

	_, err = readSchema("views")
	assert.Error(t, err)
}

func TestSortFieldNames(t *testing.T) {
	assert.Equal(t, []string{"price", "duration", "dep_time"}, sortFieldNames())
}
