package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// Jobs holds scraped job postings grouped by field, for the sample-jobs
// display. There is no embedded default; an empty table is a valid state.
type Jobs struct {
	postings map[string][]schema.JobPosting
}

var _ contract.JobsTable = &Jobs{} // Compile-time check

// LoadJobs reads a postings CSV with `Job Title,Company,Department` columns.
// An empty path returns an empty table.
func LoadJobs(path string) (*Jobs, error) {
	if path == "" {
		return &Jobs{postings: map[string][]schema.JobPosting{}}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return parseJobs(f)
}

func parseJobs(r io.Reader) (*Jobs, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // scraped data has ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read jobs header: %w", err)
	}
	titleIdx, companyIdx, deptIdx, descIdx := -1, -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Job Title":
			titleIdx = i
		case "Company":
			companyIdx = i
		case "Department":
			deptIdx = i
		case "Description":
			descIdx = i
		}
	}
	if titleIdx < 0 || deptIdx < 0 {
		return nil, fmt.Errorf("jobs CSV missing Job Title/Department columns, got %v", header)
	}

	j := &Jobs{postings: make(map[string][]schema.JobPosting)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read jobs row: %w", err)
		}
		if len(record) <= titleIdx || len(record) <= deptIdx {
			continue
		}
		field := strings.TrimSpace(record[deptIdx])
		posting := schema.JobPosting{
			Title: strings.TrimSpace(record[titleIdx]),
			Field: field,
		}
		if companyIdx >= 0 && len(record) > companyIdx {
			posting.Company = strings.TrimSpace(record[companyIdx])
		}
		if descIdx >= 0 && len(record) > descIdx {
			posting.Description = strings.TrimSpace(record[descIdx])
		}
		j.postings[field] = append(j.postings[field], posting)
	}
	return j, nil
}

// JobsFor returns up to n postings for a field. The demand table and the
// postings feed name IT both ways, so either spelling resolves.
func (j *Jobs) JobsFor(field string, n int) []schema.JobPosting {
	jobs := j.postings[field]
	if len(jobs) == 0 {
		if alt, ok := itAlias(field); ok {
			jobs = j.postings[alt]
		}
	}
	if len(jobs) > n {
		jobs = jobs[:n]
	}
	return jobs
}

func itAlias(field string) (string, bool) {
	switch field {
	case "IT":
		return "Information Technology", true
	case "Information Technology":
		return "IT", true
	}
	return "", false
}
