package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRecommendationResults outputs ranked recommendations, dispatching based
// on the output format configured.
func WriteRecommendationResults(recs []schema.Recommendation, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRecommendationJSONResults(recs, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRecommendationCSVResults(recs, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecommendationTable(recs, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRecommendationJSONResults handles opening the file and calling the JSON writer.
func writeRecommendationJSONResults(recs []schema.Recommendation, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRecommendations(w, recs)
	}, "Wrote JSON")
}

// writeRecommendationCSVResults handles opening the file and calling the CSV writer.
func writeRecommendationCSVResults(recs []schema.Recommendation, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRecommendations(csvWriter, recs, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeRecommendationTable generates and writes the human-readable table.
func writeRecommendationTable(recs []schema.Recommendation, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Field", "Score", "Confidence", "Status", "Outlook"}
	if cfg.Detail {
		headers = append(headers, "Interest", "Demand", "IContrib", "MContrib", "Jobs")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := GetMaxTableFieldWidth(cfg)
	var data [][]string
	for i, r := range recs {
		row := []string{
			strconv.Itoa(i + 1),                           // Rank
			truncateLabel(r.Field, maxWidth),              // Field
			fmtFloat(r.FinalScore),                        // Score
			contract.GetColorConfidenceLabel(r.Confidence), // Confidence
			contract.GetColorStatusLabel(r.DeptStatus),     // Status
			r.MarketOutlook,                               // Outlook
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(r.InterestScore),          // Interest
				fmtFloat(r.DemandScore),            // Demand
				fmtFloat(r.InterestContribution),   // Interest contribution
				fmtFloat(r.MarketContribution),     // Market contribution
				fmt.Sprintf(intFmt, r.JobCount),    // Jobs
			)
		}
		if cfg.Explain {
			row = append(row, r.WhyBest) // Score decomposition sentence
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Rationale blocks go below the table so the columns stay narrow.
	if cfg.Explain {
		if err := writeRationaleBlocks(writer, recs); err != nil {
			return err
		}
	}

	// Compute summary stats
	totalJobs := 0
	for _, r := range recs {
		totalJobs += r.JobCount
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d fields (total job postings: %d)\n", len(recs), totalJobs); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Recommendation completed in %v with preset %s (alpha=%.2f beta=%.2f)\n", duration, cfg.Preset, cfg.Alpha, cfg.Beta); err != nil {
		return err
	}
	return nil
}

// writeRationaleBlocks prints the three-layer rationale for each field.
func writeRationaleBlocks(w io.Writer, recs []schema.Recommendation) error {
	for i, r := range recs {
		if _, err := fmt.Fprintf(w, "\n%d. %s\n", i+1, r.Field); err != nil {
			return err
		}
		lines := []struct{ label, text string }{
			{"Academic", r.Rationale.Academic},
			{"Market", r.Rationale.Market},
			{"Trajectory", r.Rationale.Trajectory},
			{"Confidence", r.ConfidenceReason},
		}
		for _, l := range lines {
			if l.text == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "   %s: %s\n", l.label, l.text); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
