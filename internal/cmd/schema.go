package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed schemas/*.sql
var schemaFS embed.FS

// schemaFiles maps schema types to embedded files
var schemaFiles = map[string]string{
	"full":    "schemas/flights.sql",
	"tables":  "schemas/flights_no_indexes.sql",
	"indexes": "schemas/flights_indexes.sql",
}

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [type]",
	Short: "Output the flights table DDL",
	Long: `Output the SQL for the flights table that flightdash reads.
flightdash never runs this itself; pipe it to the mysql client.

Available schema types:
  full      Table with indexes (default)
  tables    Table only, no indexes (for bulk loading)
  indexes   Indexes only (run after bulk data load)

Examples:
  flightdash schema | mysql -u root flights
  flightdash schema tables --file schema.sql`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"full", "tables", "indexes"},
	RunE:      runSchema,
}

var schemaOutputFile string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutputFile, "file", "f", "", "output file (default: stdout)")
}

// readSchema returns the embedded DDL for schemaType
func readSchema(schemaType string) ([]byte, error) {
	filename, ok := schemaFiles[schemaType]
	if !ok {
		return nil, fmt.Errorf("unknown schema type '%s' (valid types: full, tables, indexes)", schemaType)
	}
	return schemaFS.ReadFile(filename)
}

func runSchema(cmd *cobra.Command, args []string) error {
	u := newUI()

	schemaType := "full"
	if len(args) > 0 {
		schemaType = args[0]
	}

	content, err := readSchema(schemaType)
	if err != nil {
		return err
	}

	if schemaOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(schemaOutputFile)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(schemaOutputFile, content, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	fmt.Fprintln(os.Stderr, u.Success("Schema written to: "+schemaOutputFile))
	return nil
}
