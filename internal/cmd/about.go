package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/ui"
)

// aboutCmd represents the about command
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe what flightdash does",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		about := analytics.AboutInfo()
		u := newUI()
		return render(cmd.OutOrStdout(), cfg.Display.Output, about, func() string {
			return aboutView(u, about)
		})
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func aboutView(u *ui.UI, about analytics.About) string {
	var sb strings.Builder
	sb.WriteString(u.Header(about.Title))
	sb.WriteString("\n\n")
	sb.WriteString(u.Paragraph(about.Summary))
	sb.WriteString("\n")
	sb.WriteString(u.Section("Features"))
	sb.WriteString("\n")
	sb.WriteString(u.Bullets(about.Features))
	return sb.String()
}
