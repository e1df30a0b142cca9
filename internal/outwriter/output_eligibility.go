package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteEligibilityResults outputs per-program eligibility outcomes, dispatching
// based on the output format configured.
func WriteEligibilityResults(results []schema.ProgramEligibility, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"program", "status", "reason"}, func(cw *csv.Writer) error {
				for _, r := range results {
					if err := cw.Write([]string{r.Program, string(r.Status), r.Reason}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEligibilityTable(results, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeEligibilityTable generates and writes the human-readable table.
func writeEligibilityTable(results []schema.ProgramEligibility, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Program", "Status", "Reason"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := GetMaxTableFieldWidth(cfg)
	eligibleCount := 0
	var data [][]string
	for i, r := range results {
		if r.Status == schema.Eligible {
			eligibleCount++
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateLabel(r.Program, maxWidth),
			statusCell(r.Status),
			r.Reason,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Eligible for %d of %d programs\n", eligibleCount, len(results))
	return err
}

// statusCell colors an eligibility status for console output.
func statusCell(status schema.EligibilityStatus) string {
	switch status {
	case schema.Eligible:
		return contract.EligibleColor.Sprint(string(status))
	case schema.Aspirational:
		return contract.AspirationalColor.Sprint(string(status))
	case schema.UnknownElig:
		return contract.UnknownColor.Sprint(string(status))
	default:
		return contract.NotEligibleColor.Sprint(string(status))
	}
}
