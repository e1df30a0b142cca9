package cmd

import (
	"errors"
	"sort"

	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/internal/outwriter"
	"github.com/pathfinder-ke/pathfinder/internal/refdata"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/spf13/cobra"
)

// eligibilityCmd checks a transcript against admission requirements.
var eligibilityCmd = &cobra.Command{
	Use:   "eligibility [program ...]",
	Short: "Check a transcript against university admission requirements.",
	Long: `Evaluate a student's transcript against program admission requirements.

Each program yields one of:
- ELIGIBLE: the mean grade and every required subject meet the cutoff
- ASPIRATIONAL: all gates pass except one subject a single grade step short
- NOT_ELIGIBLE: the mean grade or a required subject falls below the cutoff
- UNKNOWN: the program has no known requirements entry

Program names match by case-insensitive substring, so "computer science"
finds "Bachelor of Science in Computer Science". With no program arguments
every known program is checked.

Requires: --transcript pointing at a JSON file with mean_grade and subjects.

Examples:
  # Check every known program
  pathfinder eligibility --transcript grades.json

  # Check specific programs
  pathfinder eligibility "Computer Science" "Bachelor of Laws" --transcript grades.json

  # Machine-readable output
  pathfinder eligibility --transcript grades.json --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if cfg.TranscriptPath == "" {
			contract.LogFatal("Cannot check eligibility", errors.New("--transcript is required"))
		}
		transcript, err := refdata.LoadTranscript(cfg.TranscriptPath)
		if err != nil {
			contract.LogFatal("Cannot load transcript", err)
		}
		reqs, err := refdata.LoadRequirements(cfg.RequirementsPath)
		if err != nil {
			contract.LogFatal("Cannot load admission requirements", err)
		}

		programs := args
		if len(programs) == 0 {
			for _, entry := range reqs.All() {
				programs = append(programs, entry.Name)
			}
			sort.Strings(programs)
		}

		eval := core.NewEvaluator(reqs)
		results := make([]schema.ProgramEligibility, 0, len(programs))
		for _, program := range programs {
			res := eval.CheckProgram(program, transcript)
			results = append(results, schema.ProgramEligibility{
				Program: program,
				Status:  res.Status,
				Reason:  res.Reason,
			})
		}

		if err := outwriter.NewOutWriter().WriteEligibility(results, cfg); err != nil {
			contract.LogFatal("Cannot write eligibility results", err)
		}
	},
}
