package cmd

import (
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/internal/outwriter"
	"github.com/pathfinder-ke/pathfinder/internal/refdata"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/spf13/cobra"
)

// maxDemandRows caps the demand listing; tables never approach this size.
const maxDemandRows = 1000

// demandCmd shows the job-market demand table.
var demandCmd = &cobra.Command{
	Use:   "demand",
	Short: "Show career fields ranked by job-posting counts.",
	Long: `List every career field in the demand table ranked by job-posting count,
with the normalized demand score used during blending.

Examples:
  # Show the current market picture
  pathfinder demand

  # Use your own market snapshot
  pathfinder demand --demand-file postings.csv

  # Export to CSV
  pathfinder demand --output csv --output-file demand.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		demand, err := refdata.LoadDemand(cfg.DemandPath)
		if err != nil {
			contract.LogFatal("Cannot load demand table", err)
		}

		fields := demand.TopFields(maxDemandRows)
		entries := make([]schema.DemandEntry, 0, len(fields))
		for _, field := range fields {
			entries = append(entries, schema.DemandEntry{Field: field, JobCount: demand.Lookup(field)})
		}

		if err := outwriter.NewOutWriter().WriteDemand(entries, cfg); err != nil {
			contract.LogFatal("Cannot write demand table", err)
		}
	},
}
