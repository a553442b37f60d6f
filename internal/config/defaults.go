// Package config contains defaults for the flight analytics tool.
// Every value here can be overridden through a config file, environment
// variables, or command-line flags.
package config

import "time"

// =============================================================================
// DATABASE DEFAULTS
// =============================================================================

const (
	// DBDriver is the database driver to use
	DBDriver = "mysql"

	// DBHost is the database host (env DB_HOST)
	DBHost = "127.0.0.1"

	// DBPort is the database port (env DB_PORT)
	DBPort = 3306

	// DBUser is the database user (env DB_USER)
	DBUser = "root"

	// DBPassword is the database password (env DB_PASSWORD)
	DBPassword = ""

	// DBName is the database holding the flights table (env DB_NAME)
	DBName = "flights"

	// DBMaxOpenConns is maximum open connections in the pool
	DBMaxOpenConns = 10

	// DBMaxIdleConns is maximum idle connections in the pool
	DBMaxIdleConns = 2

	// DBConnMaxLifetime is how long a connection can be reused
	DBConnMaxLifetime = 5 * time.Minute

	// DBConnMaxIdleTime is how long an idle connection is kept
	DBConnMaxIdleTime = 1 * time.Minute

	// DBConnectTimeout bounds the startup ping
	DBConnectTimeout = 10 * time.Second

	// DBQueryTimeout bounds every analytics query
	DBQueryTimeout = 15 * time.Second
)

// =============================================================================
// PRESENTATION DEFAULTS
// =============================================================================

const (
	// ServerAddr is the listen address for the HTTP API
	ServerAddr = ":8080"

	// DisplayCurrency is the ISO code used to format prices (the dataset stores none)
	DisplayCurrency = "INR"

	// BusyAirportsLimit caps the busiest-airports chart (0 = all cities)
	BusyAirportsLimit = 0

	// OutputFormat is the default rendering for CLI commands
	OutputFormat = "table"
)
