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

// WriteDemandResults outputs the job-market demand table, dispatching based on
// the output format configured. Entries arrive pre-sorted by job count.
func WriteDemandResults(entries []schema.DemandEntry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"rank", "field", "job_count", "demand_score"}, func(cw *csv.Writer) error {
				max := maxJobCount(entries)
				for i, e := range entries {
					row := []string{
						strconv.Itoa(i + 1),
						e.Field,
						strconv.Itoa(e.JobCount),
						fmtFloat(demandScore(e.JobCount, max)),
					}
					if err := cw.Write(row); err != nil {
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
			return writeDemandTable(entries, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeDemandTable generates and writes the human-readable table.
func writeDemandTable(entries []schema.DemandEntry, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Field", "Jobs", "Demand"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	max := maxJobCount(entries)
	totalJobs := 0
	maxWidth := GetMaxTableFieldWidth(cfg)
	var data [][]string
	for i, e := range entries {
		totalJobs += e.JobCount
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateLabel(e.Field, maxWidth),
			strconv.Itoa(e.JobCount),
			fmtFloat(demandScore(e.JobCount, max)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d fields (total job postings: %d)\n", len(entries), totalJobs)
	return err
}

func maxJobCount(entries []schema.DemandEntry) int {
	max := 0
	for _, e := range entries {
		if e.JobCount > max {
			max = e.JobCount
		}
	}
	return max
}

func demandScore(count, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(count) / float64(max)
}
