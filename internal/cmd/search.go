package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/database"
	"github.com/willfong/flight-analytics/internal/ui"
	"github.com/willfong/flight-analytics/internal/utils"
)

var (
	searchFrom string
	searchTo   string
	searchSort string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find flights between two cities",
	Long: `List every flight from one city to another with the lowest and
average fare for the route.

Results are sorted ascending by one of: price, duration, dep_time.

Example:
  flightdash search --from Delhi --to Cochin
  flightdash search --from Banglore --to "New Delhi" --sort dep_time
  flightdash search --from Kolkata --to Banglore -o json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchFrom, "from", "", "source city (required)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "destination city (required)")
	searchCmd.Flags().StringVar(&searchSort, "sort", database.SortByPrice.String(),
		"sort by: "+strings.Join(sortFieldNames(), ", "))

	searchCmd.MarkFlagRequired("from")
	searchCmd.MarkFlagRequired("to")
}

func sortFieldNames() []string {
	fields := database.SortFields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return names
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Reject a bad sort before connecting
	if _, err := database.ParseSortField(searchSort); err != nil {
		return err
	}

	u := newUI()
	pool, svc, err := openService(cmd.Context(), u)
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := svc.SearchRoute(cmd.Context(), analytics.RouteQuery{
		Source:      searchFrom,
		Destination: searchTo,
		SortBy:      searchSort,
	})
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Display.Output, result, func() string {
		return searchView(u, result, cfg.Display.Currency)
	})
}

func searchView(u *ui.UI, r analytics.RouteResult, currency string) string {
	var sb strings.Builder
	sb.WriteString(u.Header(fmt.Sprintf("Flights from %s to %s", r.Source, r.Destination)))
	sb.WriteString("\n")

	if r.Unavailable {
		sb.WriteString(u.Unavailable("Flight search"))
		return sb.String()
	}
	if !r.Found() {
		sb.WriteString(u.Warning("No flights found for this route!"))
		return sb.String()
	}

	sb.WriteString(u.SummaryBox("Price Analysis", []ui.KV{
		{Key: "Lowest Price", Value: utils.FormatPrice(r.LowestPrice, currency)},
		{Key: "Average Price", Value: utils.FormatPrice(r.AveragePrice, currency)},
		{Key: "Flights", Value: utils.FormatCount(int64(len(r.Flights)))},
	}))
	sb.WriteString("\n\n")

	headers := []string{
		"Airline",
		"Route",
		"Departure Time",
		"Duration (hrs)",
		fmt.Sprintf("Price (%s)", utils.GetCurrency(currency).Symbol),
		"Date of Journey",
	}
	rows := make([][]string, 0, len(r.Flights))
	for _, f := range r.Flights {
		rows = append(rows, []string{
			f.Airline,
			f.Route,
			f.DepartureTime,
			f.Duration,
			utils.FormatCount(f.Price),
			f.DateOfJourney,
		})
	}
	sb.WriteString(u.Table(headers, rows, 4))
	return sb.String()
}
