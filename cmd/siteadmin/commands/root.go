package commands

import (
	"fmt"
	"os"

	"github.com/company-site-api/internal/config"
	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	migrationsDir string
	verbose       bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "siteadmin",
	Short: "Operator tooling for the company site API",
	Long: `siteadmin manages the company site database outside the HTTP API.

Connection settings come from the same DB_* environment variables the server reads.

Examples:
  siteadmin migrate up
  siteadmin admin create --username admin --email admin@example.com`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "migrations-dir", "", "Directory of migration files (default: MIGRATIONS_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// setup loads configuration and opens the database. Tooling runs with
// relaxed secret checks because it never issues tokens.
func setup() (*config.Config, *database.DB, zerolog.Logger, error) {
	if os.Getenv("ENV") == "" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(level, "pretty")

	if migrationsDir != "" {
		cfg.Database.MigrationsPath = migrationsDir
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, nil, log, err
	}
	return cfg, db, log, nil
}
