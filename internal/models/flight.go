package models

// FlightRecord represents one row of the flights table: a single historical
// flight listing with its fare.
type FlightRecord struct {
	Airline       string `json:"airline" yaml:"airline"`
	Source        string `json:"source" yaml:"source"`
	Destination   string `json:"destination" yaml:"destination"`
	Route         string `json:"route" yaml:"route"`
	DepartureTime string `json:"departure_time" yaml:"departure_time"`

	// Duration is kept as text; datasets store either "2h 50m" or decimal hours
	Duration string `json:"duration" yaml:"duration"`

	// Price is a whole amount in the display currency
	Price int64 `json:"price" yaml:"price"`

	// DateOfJourney is stored as a string in the source schema
	DateOfJourney string `json:"date_of_journey" yaml:"date_of_journey"`
}

// AirlineCount is the number of listings for one carrier.
type AirlineCount struct {
	Airline string `json:"airline" yaml:"airline"`
	Count   int64  `json:"count" yaml:"count"`
}

// AirlineCounts is the result of an airline frequency query.
type AirlineCounts []AirlineCount

// Map returns the counts keyed by airline name.
func (a AirlineCounts) Map() map[string]int64 {
	m := make(map[string]int64, len(a))
	for _, c := range a {
		m[c.Airline] += c.Count
	}
	return m
}

// Total returns the sum of all counts.
func (a AirlineCounts) Total() int64 {
	var total int64
	for _, c := range a {
		total += c.Count
	}
	return total
}

// CityCount is the number of times a city appears as source or destination.
type CityCount struct {
	City  string `json:"city" yaml:"city"`
	Count int64  `json:"count" yaml:"count"`
}

// DateCount is the number of listings on one journey date.
type DateCount struct {
	Date  string `json:"date" yaml:"date"`
	Count int64  `json:"count" yaml:"count"`
}
