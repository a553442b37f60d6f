package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// Config holds all configuration for the flight analytics tool
type Config struct {
	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// HTTP API configuration
	Server ServerConfig `mapstructure:"server"`

	// Rendering options shared by the CLI and the API
	Display DisplayConfig `mapstructure:"display"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	// Driver (only mysql is registered)
	Driver string `mapstructure:"driver"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`

	// Connection pool settings
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`

	// Timeouts
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DisplayConfig holds rendering settings
type DisplayConfig struct {
	Currency          string `mapstructure:"currency"`
	BusyAirportsLimit int    `mapstructure:"busy_airports_limit"`
	Output            string `mapstructure:"output"`
}

// envBindings maps config keys to the environment variables operators set.
var envBindings = map[string]string{
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.name":     "DB_NAME",
	"server.addr":       "FLIGHTDASH_ADDR",
	"display.currency":  "FLIGHTDASH_CURRENCY",
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DBDriver,
			Host:            DBHost,
			Port:            DBPort,
			User:            DBUser,
			Password:        DBPassword,
			Name:            DBName,
			MaxOpenConns:    DBMaxOpenConns,
			MaxIdleConns:    DBMaxIdleConns,
			ConnMaxLifetime: DBConnMaxLifetime,
			ConnMaxIdleTime: DBConnMaxIdleTime,
			ConnectTimeout:  DBConnectTimeout,
			QueryTimeout:    DBQueryTimeout,
		},
		Server: ServerConfig{
			Addr: ServerAddr,
		},
		Display: DisplayConfig{
			Currency:          DisplayCurrency,
			BusyAirportsLimit: BusyAirportsLimit,
			Output:            OutputFormat,
		},
		Verbose: false,
	}
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.max_idle_conns", d.Database.MaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", d.Database.ConnMaxLifetime)
	v.SetDefault("database.conn_max_idle_time", d.Database.ConnMaxIdleTime)
	v.SetDefault("database.connect_timeout", d.Database.ConnectTimeout)
	v.SetDefault("database.query_timeout", d.Database.QueryTimeout)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("display.currency", d.Display.Currency)
	v.SetDefault("display.busy_airports_limit", d.Display.BusyAirportsLimit)
	v.SetDefault("display.output", d.Display.Output)
	v.SetDefault("verbose", d.Verbose)

	for key, env := range envBindings {
		// BindEnv only fails when called without a key
		_ = v.BindEnv(key, env)
	}
}

// Load reads configuration from the global viper instance into a Config struct
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v into a Config struct
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// Unmarshal viper config into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Display.Currency = strings.ToUpper(cfg.Display.Currency)
	cfg.Display.Output = strings.ToLower(cfg.Display.Output)

	return cfg, nil
}

// DSN builds a go-sql-driver/mysql connection string.
// The driver-level timeouts follow QueryTimeout so a stalled server read
// is bounded even when the caller's context is not.
func (d DatabaseConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	mc.DBName = d.Name
	mc.Timeout = d.ConnectTimeout
	mc.ReadTimeout = d.QueryTimeout
	mc.WriteTimeout = d.QueryTimeout
	return mc.FormatDSN()
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	// Validate database config
	if c.Database.Driver != "mysql" {
		errs = append(errs, fmt.Sprintf("database.driver %q is not supported (use mysql)", c.Database.Driver))
	}
	if c.Database.Host == "" {
		errs = append(errs, "database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		errs = append(errs, "database.port must be 1-65535")
	}
	if c.Database.User == "" {
		errs = append(errs, "database.user is required")
	}
	if c.Database.Name == "" {
		errs = append(errs, "database.name is required")
	}
	if c.Database.QueryTimeout < 0 {
		errs = append(errs, "database.query_timeout must be non-negative")
	}
	if c.Database.ConnectTimeout < 0 {
		errs = append(errs, "database.connect_timeout must be non-negative")
	}

	// Validate database pool settings
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, "database.max_open_conns must be >= 1")
	}
	if c.Database.MaxIdleConns < 0 {
		errs = append(errs, "database.max_idle_conns must be >= 0")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, "database.max_idle_conns should not exceed max_open_conns")
	}

	// Validate presentation settings
	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	if c.Display.BusyAirportsLimit < 0 {
		errs = append(errs, "display.busy_airports_limit must be non-negative")
	}
	switch c.Display.Output {
	case "table", "json", "yaml":
	default:
		errs = append(errs, fmt.Sprintf("display.output %q must be one of table, json, yaml", c.Display.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for i := 1; i < len(errs); i++ {
		result += "\n  - " + errs[i]
	}
	return result
}
