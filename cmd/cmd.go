// Package cmd defines the command-line interface for pathfinder.
package cmd

import (
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(eligibilityCmd)
	rootCmd.AddCommand(demandCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("top-n", "n", contract.DefaultTopN, "Number of recommendations to display")
	rootCmd.PersistentFlags().Float64("alpha", 0, "Interest weight in [0,1] (requires --preset custom)")
	rootCmd.PersistentFlags().Float64("beta", 0, "Market weight in [0,1] (requires --preset custom)")
	rootCmd.PersistentFlags().String("preset", string(schema.BalancedPreset), "Weighting preset: balanced, passion-first, market-priority, or custom")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-field component scores and job counts")
	rootCmd.PersistentFlags().Bool("explain", false, "Print rationale and score decomposition per field")
	rootCmd.PersistentFlags().Int("sample-jobs", contract.DefaultSampleJobs, "Number of sample job postings per field")
	rootCmd.PersistentFlags().String("demand-file", "", "Path to a demand CSV (Department,job_count); embedded default when empty")
	rootCmd.PersistentFlags().String("catalog-file", "", "Path to a career catalog JSON; embedded default when empty")
	rootCmd.PersistentFlags().String("requirements-file", "", "Path to an admission requirements JSON; embedded default when empty")
	rootCmd.PersistentFlags().String("jobs-file", "", "Path to a job postings CSV; no sample jobs when empty")
	rootCmd.PersistentFlags().String("keywords-file", "", "Path to a keyword taxonomy JSON; embedded default when empty")
	rootCmd.PersistentFlags().String("transcript", "", "Path to a transcript JSON with mean_grade and subjects")
	rootCmd.PersistentFlags().String("run-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("listen", contract.DefaultListenAddr, "Listen address for the HTTP server")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
