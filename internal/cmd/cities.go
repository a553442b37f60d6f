package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/ui"
)

var citiesFrom string

// citiesCmd represents the cities command
var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List every city that appears as a source or destination",
	Long: `List the distinct cities in the flights table, sorted by name.

With --from, the given city is left out, which gives the destinations a
search from that city can ask for.

Example:
  flightdash cities
  flightdash cities --from Delhi`,
	Args: cobra.NoArgs,
	RunE: runCities,
}

func init() {
	rootCmd.AddCommand(citiesCmd)
	citiesCmd.Flags().StringVar(&citiesFrom, "from", "", "exclude this source city")
}

func runCities(cmd *cobra.Command, args []string) error {
	u := newUI()
	pool, svc, err := openService(cmd.Context(), u)
	if err != nil {
		return err
	}
	defer pool.Close()

	list := svc.Cities(cmd.Context())
	if citiesFrom != "" {
		list.Cities = analytics.Destinations(list.Cities, citiesFrom)
	}
	return render(cmd.OutOrStdout(), cfg.Display.Output, list, func() string {
		return citiesView(u, list)
	})
}

func citiesView(u *ui.UI, list analytics.CityList) string {
	var sb strings.Builder
	if list.Unavailable {
		sb.WriteString(u.Unavailable("City list"))
		sb.WriteString("\n")
	}
	rows := make([][]string, 0, len(list.Cities))
	for _, c := range list.Cities {
		rows = append(rows, []string{c})
	}
	sb.WriteString(u.Table([]string{"City"}, rows))
	return sb.String()
}
