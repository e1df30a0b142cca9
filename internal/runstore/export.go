package runstore

import (
	"errors"
	"fmt"

	"github.com/pathfinder-ke/pathfinder/internal/parquet"
)

// ExecuteRunExport exports stored run data to Parquet files. Two files are
// produced, one per table, suffixed onto outputFile.
func ExecuteRunExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total recommendation records: %d\n", status.TotalRecords)

	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	recs, err := store.ListRecommendations()
	if err != nil {
		return fmt.Errorf("failed to retrieve recommendations: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	recsFile := outputFile + ".recommendations.parquet"
	if err := parquet.WriteRunRecommendationsParquet(parquet.ConvertRunRecommendationRecords(recs), recsFile); err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	fmt.Printf("Exported %d recommendation records to: %s\n", len(recs), recsFile)

	return nil
}
