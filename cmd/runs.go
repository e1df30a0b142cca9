package cmd

import (
	"fmt"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/internal/runstore"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run-store operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-store config values
	backendStr := viper.GetString("run-backend")
	connStr := viper.GetString("run-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := runstore.InitRunStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run store: %w", err)
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("run-backend")
	connStr := viper.GetString("run-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = runstore.GetRunDBFilePath()
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// runsCmd focused on recommendation-run data management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of the
// full sharedSetup used by recommend. This avoids reference-data loading and
// weighting validation for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage stored recommendation runs and exports",
	Long: `Manage historical recommendation-run data used for tracking and reporting.

When enabled, Pathfinder tracks every recommend pass, storing:
- Run metadata (timestamp, parameters, duration)
- Every ranked recommendation with its scores and eligibility verdict

This enables longitudinal analysis of how recommendations shift as the job
market and student inputs change, plus data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  pathfinder runs status

  # Export for analysis in pandas/DuckDB
  pathfinder runs export --output-file runs-data.parquet`,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about recommendation-run tracking.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last and oldest run timestamps
- Total recommendations stored across all runs
- Database table sizes

Examples:
  # Check run tracking status
  pathfinder runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := runstore.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Cannot get run status", fmt.Errorf("run store is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run status", err)
		}
		runstore.PrintRunStatus(status)
	},
}

// runsClearCmd clears the run data.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored recommendation runs",
	Long: `Delete all stored runs and recommendation history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  pathfinder runs export --output-file backup.parquet
  pathfinder runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := runstore.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Cannot clear run data", fmt.Errorf("run store is not initialized"))
		}
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear run data", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// runsExportCmd exports run data to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored runs to Parquet for BI tools and analytics",
	Long: `Export all stored run data to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - metadata about each recommend pass
- Recommendations - every ranked field with scores and eligibility

Parquet format enables fast querying with DuckDB, Apache Spark, and pandas,
plus direct import into BI tools.

Requires: --output-file parameter

Examples:
  # Export everything
  pathfinder runs export --output-file runs-data.parquet`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pathfinder runs migrate

  # Migrate to specific version
  pathfinder runs migrate --target-version 2

  # Rollback to initial state
  pathfinder runs migrate --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.Migrate(cfg.RunBackend, cfg.RunDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
