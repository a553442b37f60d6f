package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// versionInfo is the structured form of the version command
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newUI()
		info := versionInfo{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
			Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		}

		return render(cmd.OutOrStdout(), cfg.Display.Output, info, func() string {
			return u.Header("Flight Price Analytics") + "\n\n" +
				u.KeyValue("Version", info.Version) + "\n" +
				u.KeyValue("Git Commit", info.GitCommit) + "\n" +
				u.KeyValue("Built", info.BuildDate) + "\n" +
				u.KeyValue("Go Version", info.GoVersion) + "\n" +
				u.KeyValue("OS/Arch", info.Platform)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = Version
}
