// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRecommendations prints ranked recommendations using the configured output format.
func (ow *OutWriter) WriteRecommendations(recs []schema.Recommendation, cfg *contract.Config, duration time.Duration) error {
	return WriteRecommendationResults(recs, cfg, duration)
}

// WriteEligibility prints per-program eligibility outcomes using the configured output format.
func (ow *OutWriter) WriteEligibility(results []schema.ProgramEligibility, cfg *contract.Config) error {
	return WriteEligibilityResults(results, cfg)
}

// WriteDemand prints the job-market demand table using the configured output format.
func (ow *OutWriter) WriteDemand(entries []schema.DemandEntry, cfg *contract.Config) error {
	return WriteDemandResults(entries, cfg)
}

// GetMaxTableFieldWidth calculates the maximum width for field and program
// labels in table output based on terminal width and table configuration.
func GetMaxTableFieldWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Score + Confidence + Status + Outlook with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 40 // Interest + Demand + both contributions + Jobs with formatting
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 35 // Explain column with formatting
	}

	maxWidth := termWidth - baseWidth
	if maxWidth < 16 {
		maxWidth = 16 // Keep labels readable even in cramped terminals
	}
	return maxWidth
}

// truncateLabel shortens a label to maxWidth runes, marking the cut with an ellipsis.
func truncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) <= maxWidth {
		return label
	}
	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}
