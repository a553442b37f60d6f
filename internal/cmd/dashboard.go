package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/ui"
	"github.com/willfong/flight-analytics/internal/utils"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show headline figures for the flights table",
	Long: `Show the number of airlines, cities and flights in the dataset and
the average number of flights per journey date.

Example:
  flightdash dashboard
  flightdash dashboard -o json`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	u := newUI()
	pool, svc, err := openService(cmd.Context(), u)
	if err != nil {
		return err
	}
	defer pool.Close()

	d := svc.Dashboard(cmd.Context())
	return render(cmd.OutOrStdout(), cfg.Display.Output, d, func() string {
		return dashboardView(u, d)
	})
}

func dashboardView(u *ui.UI, d analytics.Dashboard) string {
	var sb strings.Builder
	if d.Unavailable {
		sb.WriteString(u.Unavailable("Some dashboard figures"))
		sb.WriteString("\n")
	}
	sb.WriteString(u.SummaryBox("Flight Price Dashboard", []ui.KV{
		{Key: "Total Airlines", Value: utils.FormatCount(int64(d.TotalAirlines))},
		{Key: "Total Cities", Value: utils.FormatCount(int64(d.TotalCities))},
		{Key: "Total Flights", Value: utils.FormatCount(d.TotalFlights)},
		{Key: "Average Daily Flights", Value: utils.FormatDecimal(d.AverageDailyFlights)},
	}))
	return sb.String()
}
