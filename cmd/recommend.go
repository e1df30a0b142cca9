package cmd

import (
	"strings"
	"time"

	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/internal/outwriter"
	"github.com/pathfinder-ke/pathfinder/internal/refdata"
	"github.com/pathfinder-ke/pathfinder/internal/runstore"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/spf13/cobra"
)

// recommendCmd runs the full recommendation pipeline.
var recommendCmd = &cobra.Command{
	Use:   "recommend [interest text]",
	Short: "Rank career fields for a student's stated interests.",
	Long: `Analyze a student's free-text interests and rank career fields by blending
interest similarity with current job-market demand.

Each recommendation carries:
- The blended score plus its interest and market components
- A confidence level describing how trustworthy the interest signal is
- An eligibility verdict per admission program when a transcript is given
- A three-layer rationale (academic, market, trajectory) and sample jobs

Examples:
  # Basic recommendation from interest text
  pathfinder recommend "I love building software and solving puzzles"

  # Weight passion over the job market
  pathfinder recommend "painting and sculpture" --preset passion-first

  # Include academic eligibility from a transcript
  pathfinder recommend "fixing machines" --transcript grades.json

  # Full explanation with component scores
  pathfinder recommend "teaching children" --detail --explain

  # Export for a spreadsheet
  pathfinder recommend "business and money" --output csv --output-file recs.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		text := strings.Join(args, " ")

		transcript, err := refdata.LoadTranscript(cfg.TranscriptPath)
		if err != nil {
			contract.LogFatal("Cannot load transcript", err)
		}
		deps, err := buildEngine(cfg)
		if err != nil {
			contract.LogFatal("Cannot load reference data", err)
		}

		start := time.Now()
		recs, err := deps.engine.Recommend(core.Request{
			Text:       text,
			TopN:       cfg.TopN,
			Alpha:      cfg.Alpha,
			Beta:       cfg.Beta,
			Transcript: transcript,
			SampleJobs: cfg.SampleJobs,
		})
		if err != nil {
			contract.LogFatal("Cannot generate recommendations", err)
		}
		duration := time.Since(start)

		recordRun(text, recs, start, duration)

		if err := outwriter.NewOutWriter().WriteRecommendations(recs, cfg, duration); err != nil {
			contract.LogFatal("Cannot write recommendations", err)
		}
	},
}

// recordRun persists one recommend pass when run tracking is enabled.
// Persistence failures are warnings; they never block the recommendation.
func recordRun(text string, recs []schema.Recommendation, start time.Time, duration time.Duration) {
	store := runstore.Manager.GetRunStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"text":   text,
		"top_n":  cfg.TopN,
		"alpha":  cfg.Alpha,
		"beta":   cfg.Beta,
		"preset": string(cfg.Preset),
	}
	runID, err := store.BeginRun(start, params)
	if err != nil {
		contract.LogWarn("Cannot begin run tracking", err)
		return
	}
	for i, rec := range recs {
		if err := store.RecordRecommendation(runID, i+1, rec); err != nil {
			contract.LogWarn("Cannot record recommendation", err)
			return
		}
	}
	if err := store.EndRun(runID, start.Add(duration), len(recs)); err != nil {
		contract.LogWarn("Cannot finalize run tracking", err)
	}
}
