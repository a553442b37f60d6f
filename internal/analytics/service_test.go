package analytics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/willfong/flight-analytics/internal/database"
	"github.com/willfong/flight-analytics/internal/models"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) SearchFlights(ctx context.Context, source, destination string, sort database.SortField) ([]models.FlightRecord, error) {
	args := m.Called(ctx, source, destination, sort)
	return args.Get(0).([]models.FlightRecord), args.Error(1)
}

func (m *MockStore) AirlineFrequency(ctx context.Context) (models.AirlineCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.AirlineCounts), args.Error(1)
}

func (m *MockStore) BusyAirports(ctx context.Context, limit int) ([]models.CityCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.CityCount), args.Error(1)
}

func (m *MockStore) DailyFlightCounts(ctx context.Context) ([]models.DateCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.DateCount), args.Error(1)
}

func (m *MockStore) CountFlights(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var errQuery = fmt.Errorf("%w: test: %w", database.ErrQuery, errors.New("connection lost"))

func TestDashboard(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()

	store.On("AirlineFrequency", ctx).Return(models.AirlineCounts{{Airline: "IndiGo", Count: 4}, {Airline: "Vistara", Count: 2}}, nil)
	store.On("ListCities", ctx).Return([]string{"Banglore", "Delhi", "Kolkata"}, nil)
	store.On("CountFlights", ctx).Return(int64(6), nil)
	store.On("DailyFlightCounts", ctx).Return([]models.DateCount{
		{Date: "2019-03-01", Count: 1},
		{Date: "2019-03-02", Count: 2},
		{Date: "2019-03-03", Count: 3},
	}, nil)

	d := NewService(store, nil).Dashboard(ctx)

	assert.Equal(t, 2, d.TotalAirlines)
	assert.Equal(t, 3, d.TotalCities)
	assert.Equal(t, int64(6), d.TotalFlights)
	assert.Equal(t, 2.0, d.AverageDailyFlights)
	assert.False(t, d.Unavailable)
	store.AssertExpectations(t)
}

// Regression: an empty dataset used to divide by zero when averaging.
func TestDashboardEmptyDataset(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()

	store.On("AirlineFrequency", ctx).Return(models.AirlineCounts{}, nil)
	store.On("ListCities", ctx).Return([]string{}, nil)
	store.On("CountFlights", ctx).Return(int64(0), nil)
	store.On("DailyFlightCounts", ctx).Return([]models.DateCount{}, nil)

	d := NewService(store, nil).Dashboard(ctx)

	assert.Equal(t, Dashboard{}, d)
}

func TestDashboardQueryFailure(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()

	store.On("AirlineFrequency", ctx).Return(models.AirlineCounts{}, errQuery)
	store.On("ListCities", ctx).Return([]string{"Delhi"}, nil)
	store.On("CountFlights", ctx).Return(int64(0), errQuery)
	store.On("DailyFlightCounts", ctx).Return([]models.DateCount{}, errQuery)

	d := NewService(store, nil).Dashboard(ctx)

	assert.True(t, d.Unavailable)
	assert.Equal(t, 1, d.TotalCities)
	assert.Zero(t, d.AverageDailyFlights)
}

func TestAverageDaily(t *testing.T) {
	assert.Zero(t, AverageDaily(nil))
	assert.Zero(t, AverageDaily([]models.DateCount{}))
	assert.Equal(t, 3.0, AverageDaily([]models.DateCount{{Count: 3}}))
	assert.Equal(t, 1.67, AverageDaily([]models.DateCount{{Count: 1}, {Count: 2}, {Count: 2}}))
}

func TestSearchRoute(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()

	store.On("ListCities", ctx).Return([]string{"Banglore", "Delhi"}, nil)
	store.On("SearchFlights", ctx, "Banglore", "Delhi", database.SortByPrice).Return([]models.FlightRecord{
		{Airline: "IndiGo", Source: "Banglore", Destination: "Delhi", Price: 200},
		{Airline: "Air India", Source: "Banglore", Destination: "Delhi", Price: 500},
		{Airline: "SpiceJet", Source: "Banglore", Destination: "Delhi", Price: 301},
	}, nil)

	res, err := NewService(store, nil).SearchRoute(ctx, RouteQuery{Source: " Banglore", Destination: "Delhi", SortBy: "Price"})
	require.NoError(t, err)

	assert.True(t, res.Found())
	assert.Len(t, res.Flights, 3)
	assert.Equal(t, int64(200), res.LowestPrice)
	assert.Equal(t, int64(333), res.AveragePrice)
	assert.Equal(t, "price", res.SortBy)
	assert.False(t, res.Unavailable)
	store.AssertExpectations(t)
}

func TestSearchRouteValidation(t *testing.T) {
	tests := []struct {
		name  string
		query RouteQuery
		field string
	}{
		{"missing source", RouteQuery{Destination: "Delhi"}, "source"},
		{"missing destination", RouteQuery{Source: "Delhi"}, "destination"},
		{"same city", RouteQuery{Source: "Delhi", Destination: "Delhi"}, "destination"},
		{"bad sort", RouteQuery{Source: "Delhi", Destination: "Cochin", SortBy: "Price; DROP TABLE flights"}, "sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{}

			res, err := NewService(store, nil).SearchRoute(context.Background(), tt.query)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.True(t, IsValidation(err))
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.NotNil(t, res.Flights)
			// Rejected before reaching the store
			store.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSearchRouteBadSortWrapsSortError(t *testing.T) {
	store := &MockStore{}

	_, err := NewService(store, nil).SearchRoute(context.Background(), RouteQuery{Source: "A", Destination: "B", SortBy: "airline"})

	assert.ErrorIs(t, err, database.ErrInvalidSortField)
}

func TestSearchRouteUnknownCity(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()
	store.On("ListCities", ctx).Return([]string{"Delhi", "Cochin"}, nil)

	_, err := NewService(store, nil).SearchRoute(ctx, RouteQuery{Source: "Delhi", Destination: "Atlantis"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "destination", ve.Field)
	assert.Contains(t, ve.Error(), "Atlantis")
	store.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchRouteFailsSoft(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()

	// City list unavailable: the search still runs
	store.On("ListCities", ctx).Return([]string{}, errQuery)
	store.On("SearchFlights", ctx, "Delhi", "Cochin", database.SortByDuration).Return([]models.FlightRecord{}, errQuery)

	res, err := NewService(store, nil).SearchRoute(ctx, RouteQuery{Source: "Delhi", Destination: "Cochin", SortBy: "duration"})

	require.NoError(t, err)
	assert.True(t, res.Unavailable)
	assert.False(t, res.Found())
	assert.NotNil(t, res.Flights)
	assert.Zero(t, res.LowestPrice)
	assert.Zero(t, res.AveragePrice)
}

func TestDestinations(t *testing.T) {
	cities := []string{"Banglore", "Chennai", "Delhi"}

	assert.Equal(t, []string{"Banglore", "Delhi"}, Destinations(cities, "Chennai"))
	assert.Equal(t, cities, Destinations(cities, "Mumbai"))
	assert.Empty(t, Destinations(nil, "Delhi"))
}

func TestAirlineShare(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()
	store.On("AirlineFrequency", ctx).Return(models.AirlineCounts{
		{Airline: "IndiGo", Count: 1},
		{Airline: "Jet Airways", Count: 2},
	}, nil)

	report := NewService(store, nil).AirlineShare(ctx)

	assert.Equal(t, int64(3), report.Total)
	require.Len(t, report.Airlines, 2)
	assert.Equal(t, 33.33, report.Airlines[0].Percent)
	assert.Equal(t, 66.67, report.Airlines[1].Percent)
}

func TestAirlineShareEmpty(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()
	store.On("AirlineFrequency", ctx).Return(models.AirlineCounts{}, errQuery)

	report := NewService(store, nil).AirlineShare(ctx)

	assert.True(t, report.Unavailable)
	assert.Zero(t, report.Total)
	assert.NotNil(t, report.Airlines)
	assert.Empty(t, report.Airlines)
}

func TestBusyAirportsAndDailyTrend(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()
	store.On("BusyAirports", ctx, 3).Return([]models.CityCount{{City: "Delhi", Count: 5}}, nil)
	store.On("DailyFlightCounts", ctx).Return([]models.DateCount{{Date: "2019-03-24", Count: 2}, {Date: "2019-03-25", Count: 2}}, nil)

	svc := NewService(store, nil)

	airports := svc.BusyAirports(ctx, 3)
	assert.Equal(t, []models.CityCount{{City: "Delhi", Count: 5}}, airports.Airports)

	daily := svc.DailyTrend(ctx)
	assert.Len(t, daily.Days, 2)
	assert.Equal(t, 2.0, daily.Average)
	store.AssertExpectations(t)
}

func TestAboutInfo(t *testing.T) {
	about := AboutInfo()
	assert.NotEmpty(t, about.Title)
	assert.NotEmpty(t, about.Features)
}
