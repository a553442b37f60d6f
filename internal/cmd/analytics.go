package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/ui"
	"github.com/willfong/flight-analytics/internal/utils"
)

// Report names accepted by the analytics command
const (
	reportAirlines = "airlines"
	reportAirports = "airports"
	reportDaily    = "daily"
)

var reportNames = []string{reportAirlines, reportAirports, reportDaily}

// analyticsCmd represents the analytics command
var analyticsCmd = &cobra.Command{
	Use:   "analytics [airlines|airports|daily]",
	Short: "Chart airline, airport and daily flight counts",
	Long: `Render aggregate charts over the flights table.

Available reports:
  airlines  Listings per airline with market share
  airports  Busiest cities by departures plus arrivals
  daily     Listings per journey date with the daily average

With no report named, all three are shown.

Example:
  flightdash analytics
  flightdash analytics airports --limit 5
  flightdash analytics daily -o yaml`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: reportNames,
	RunE:      runAnalytics,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)

	analyticsCmd.Flags().Int("limit", 0, "show only the N busiest airports (0 = all)")
	if err := viper.BindPFlag("display.busy_airports_limit", analyticsCmd.Flags().Lookup("limit")); err != nil {
		panic(fmt.Sprintf("binding flag limit: %v", err))
	}
}

// analyticsOutput is the structured form of the analytics command.
// Reports that were not requested are omitted.
type analyticsOutput struct {
	Airlines *analytics.AirlineShareReport `json:"airlines,omitempty" yaml:"airlines,omitempty"`
	Airports *analytics.AirportReport      `json:"airports,omitempty" yaml:"airports,omitempty"`
	Daily    *analytics.DailyReport        `json:"daily,omitempty" yaml:"daily,omitempty"`
}

// selectedReports returns the reports named by args, or all of them
func selectedReports(args []string) []string {
	if len(args) == 0 {
		return reportNames
	}
	return args
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	u := newUI()
	pool, svc, err := openService(cmd.Context(), u)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := cmd.Context()
	var out analyticsOutput
	for _, name := range selectedReports(args) {
		switch name {
		case reportAirlines:
			r := svc.AirlineShare(ctx)
			out.Airlines = &r
		case reportAirports:
			r := svc.BusyAirports(ctx, cfg.Display.BusyAirportsLimit)
			out.Airports = &r
		case reportDaily:
			r := svc.DailyTrend(ctx)
			out.Daily = &r
		}
	}

	return render(cmd.OutOrStdout(), cfg.Display.Output, out, func() string {
		return analyticsView(u, out)
	})
}

func analyticsView(u *ui.UI, out analyticsOutput) string {
	var parts []string
	if out.Airlines != nil {
		parts = append(parts, airlinesView(u, *out.Airlines))
	}
	if out.Airports != nil {
		parts = append(parts, airportsView(u, *out.Airports))
	}
	if out.Daily != nil {
		parts = append(parts, dailyView(u, *out.Daily))
	}
	return strings.Join(parts, "\n\n")
}

func airlinesView(u *ui.UI, r analytics.AirlineShareReport) string {
	bars := make([]ui.Bar, 0, len(r.Airlines))
	for _, a := range r.Airlines {
		bars = append(bars, ui.Bar{Label: a.Airline, Value: a.Count, Note: fmt.Sprintf("(%s%%)", utils.FormatDecimal(a.Percent))})
	}
	return withNotice(u, r.Unavailable, "Airline frequency",
		u.BarChart("Airline Frequency", bars)+"\n"+u.KeyValue("Total", utils.FormatCount(r.Total)))
}

func airportsView(u *ui.UI, r analytics.AirportReport) string {
	bars := make([]ui.Bar, 0, len(r.Airports))
	for _, a := range r.Airports {
		bars = append(bars, ui.Bar{Label: a.City, Value: a.Count})
	}
	return withNotice(u, r.Unavailable, "Busiest airports", u.BarChart("Busiest Airports", bars))
}

func dailyView(u *ui.UI, r analytics.DailyReport) string {
	bars := make([]ui.Bar, 0, len(r.Days))
	for _, d := range r.Days {
		bars = append(bars, ui.Bar{Label: d.Date, Value: d.Count})
	}
	return withNotice(u, r.Unavailable, "Daily flight counts",
		u.BarChart("Flights per Day", bars)+"\n"+u.KeyValue("Daily Average", utils.FormatDecimal(r.Average)))
}

// withNotice prefixes body with the unavailable warning when the data failed to load
func withNotice(u *ui.UI, unavailable bool, what, body string) string {
	if !unavailable {
		return body
	}
	return u.Unavailable(what) + "\n" + body
}
