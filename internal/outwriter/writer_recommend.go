package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// writeJSONResultsForRecommendations marshals the recommendation slice to JSON and writes it.
func writeJSONResultsForRecommendations(w io.Writer, recs []schema.Recommendation) error {
	// 1. Prepare the data structure for JSON with rank and status label added
	type JSONRecommendation struct {
		Rank        int    `json:"rank"`
		StatusLabel string `json:"status_label"`
		schema.Recommendation
	}

	output := make([]JSONRecommendation, len(recs))
	for i, r := range recs {
		output[i] = JSONRecommendation{
			Rank:           i + 1,
			StatusLabel:    contract.GetPlainStatusLabel(r.DeptStatus),
			Recommendation: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForRecommendations writes the recommendation data to a CSV writer.
func writeCSVResultsForRecommendations(w *csv.Writer, recs []schema.Recommendation, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"field",
		"final_score",
		"interest_score",
		"demand_score",
		"interest_contribution",
		"market_contribution",
		"confidence",
		"status",
		"market_outlook",
		"job_count",
		"skills",
		"programs",
		"why_best",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, r := range recs {
		row := []string{
			strconv.Itoa(i + 1),                           // Rank
			r.Field,                                       // Field
			fmtFloat(r.FinalScore),                        // Final score
			fmtFloat(r.InterestScore),                     // Interest score
			fmtFloat(r.DemandScore),                       // Demand score
			fmtFloat(r.InterestContribution),              // Interest contribution
			fmtFloat(r.MarketContribution),                // Market contribution
			string(r.Confidence),                          // Confidence
			contract.GetPlainStatusLabel(r.DeptStatus),    // Status
			r.MarketOutlook,                               // Outlook
			fmt.Sprintf(intFmt, r.JobCount),               // Job count
			strings.Join(r.Skills, "|"),                   // Skills
			strings.Join(r.Programs, "|"),                 // Programs
			r.WhyBest,                                     // Score decomposition
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
