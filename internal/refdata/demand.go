package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
)

// Demand is the job-market demand table, keyed by field label. Counts are
// loaded once and never mutated, so lookups need no locking.
type Demand struct {
	counts   map[string]int
	maxCount int
}

var _ contract.DemandTable = &Demand{} // Compile-time check

// LoadDemand reads a demand CSV with a `Department,job_count` header. An
// empty path loads the embedded default table.
func LoadDemand(path string) (*Demand, error) {
	r, closer, err := openOrEmbedded(path, defaultDemandFile)
	if err != nil {
		return nil, err
	}
	defer closer()
	return parseDemand(r)
}

func parseDemand(r io.Reader) (*Demand, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read demand header: %w", err)
	}
	deptIdx, countIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Department":
			deptIdx = i
		case "job_count":
			countIdx = i
		}
	}
	if deptIdx < 0 || countIdx < 0 {
		return nil, fmt.Errorf("demand CSV missing Department/job_count columns, got %v", header)
	}

	d := &Demand{counts: make(map[string]int)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read demand row: %w", err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(record[countIdx]))
		if err != nil {
			return nil, fmt.Errorf("demand row %q: %w", record[deptIdx], err)
		}
		field := strings.TrimSpace(record[deptIdx])
		d.counts[field] = count
		if count > d.maxCount {
			d.maxCount = count
		}
	}
	return d, nil
}

// Lookup returns the posting count for a field, zero when absent.
func (d *Demand) Lookup(field string) int {
	return d.counts[field]
}

// MaxCount returns the largest posting count across all fields.
func (d *Demand) MaxCount() int {
	return d.maxCount
}

// TopFields returns up to n field labels by posting count descending, with
// label order breaking ties.
func (d *Demand) TopFields(n int) []string {
	fields := make([]string, 0, len(d.counts))
	for field := range d.counts {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		if d.counts[fields[i]] != d.counts[fields[j]] {
			return d.counts[fields[i]] > d.counts[fields[j]]
		}
		return fields[i] < fields[j]
	})
	if len(fields) > n {
		fields = fields[:n]
	}
	return fields
}

// openOrEmbedded opens path for reading, or the embedded fallback when path
// is empty. The returned closer is always safe to defer.
func openOrEmbedded(path, embedded string) (io.Reader, func(), error) {
	if path == "" {
		f, err := defaultData.Open(embedded)
		if err != nil {
			return nil, nil, fmt.Errorf("open embedded %s: %w", embedded, err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
