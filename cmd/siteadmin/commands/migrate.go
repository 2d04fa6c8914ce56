package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// migrateCmd groups the schema migration commands
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, _, err := setup()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			return err
		}
		return printVersion(cmd, cfg.Database.MigrationsPath, db)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, _, err := setup()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.MigrateDown(cfg.Database.MigrationsPath); err != nil {
			return err
		}
		return printVersion(cmd, cfg.Database.MigrationsPath, db)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, _, err := setup()
		if err != nil {
			return err
		}
		defer db.Close()

		return printVersion(cmd, cfg.Database.MigrationsPath, db)
	},
}

type versioner interface {
	MigrationVersion(path string) (uint, bool, error)
}

func printVersion(cmd *cobra.Command, path string, db versioner) error {
	version, dirty, err := db.MigrationVersion(path)
	if err != nil {
		return err
	}
	if version == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d", version)
	if dirty {
		fmt.Fprint(cmd.OutOrStdout(), " (dirty)")
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}
