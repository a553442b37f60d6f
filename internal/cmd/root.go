package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/willfong/flight-analytics/internal/analytics"
	"github.com/willfong/flight-analytics/internal/config"
	"github.com/willfong/flight-analytics/internal/database"
	"github.com/willfong/flight-analytics/internal/ui"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	// cfg and logger are set by the root PersistentPreRunE
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flightdash",
	Short: "Flight price analytics over a MySQL flights table",
	Long: `A read-only analytics tool for historical flight listings.

flightdash reads the flights table and answers route searches and
aggregate questions: which carriers fly most, which airports are busiest,
and how many flights run per journey date.

Connection settings come from flags, DB_* environment variables, or a
config file, in that order of precedence.

Example usage:
  flightdash dashboard
  flightdash search --from Delhi --to Cochin --sort duration
  flightdash analytics airports --limit 5
  flightdash serve --addr :8080`,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		var shown reportedError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, newUI().Error(err.Error()))
		}
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./flightdash.yaml or ~/.config/flightdash/flightdash.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&noColor, "no-color", false, "disable colors and animations")
	flags.StringP("output", "o", config.OutputFormat, "output format: table, json, yaml")

	flags.String("db-host", config.DBHost, "database host (env DB_HOST)")
	flags.Int("db-port", config.DBPort, "database port (env DB_PORT)")
	flags.String("db-user", config.DBUser, "database user (env DB_USER)")
	flags.String("db-password", config.DBPassword, "database password (env DB_PASSWORD)")
	flags.String("db-name", config.DBName, "database name (env DB_NAME)")

	bindFlag("verbose", "verbose")
	bindFlag("display.output", "output")
	bindFlag("database.host", "db-host")
	bindFlag("database.port", "db-port")
	bindFlag("database.user", "db-user")
	bindFlag("database.password", "db-password")
	bindFlag("database.name", "db-name")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Set version template
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// bindFlag binds a persistent flag to a viper key
func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// initConfig reads the config file and environment, validates the result
// and installs the logger.
func initConfig(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("flightdash")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/flightdash")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger = newLogger(cfg.Verbose)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", "config_file", v.ConfigFileUsed(), "db", cfg.Database.Host, "output", cfg.Display.Output)
	return nil
}

// newLogger returns a text logger on stderr. Query failures are logged at
// warn level, so they show by default; --verbose adds debug detail.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newUI returns a UI honoring --no-color
func newUI() *ui.UI {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}
	return u
}

// reportedError marks an error whose message has already been printed
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// openService connects to the database and builds the analytics service.
// A connection failure is fatal to the command: it is printed here and
// returned so the process exits non-zero.
func openService(ctx context.Context, u *ui.UI) (*database.Pool, *analytics.Service, error) {
	pool, err := database.NewPool(cfg.Database)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Error creating database pool: %v", err)))
		return nil, nil, reportedError{err}
	}

	spin := u.NewSpinner("Connecting to database")
	spin.Start()
	if err := pool.Connect(ctx); err != nil {
		spin.Error("connection failed: " + err.Error())
		pool.Close()
		return nil, nil, reportedError{err}
	}
	spin.Success("connected!")

	queries := database.NewQueries(pool, logger)
	return pool, analytics.NewService(queries, logger), nil
}
