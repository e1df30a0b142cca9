// Package parquet provides data structures and functions for exporting
// recommendation-run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// Run represents a single recommendation run with metadata.
// This struct maps to the pathfinder_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the run duration in milliseconds (nullable)
	DurationMs *int32 `parquet:"duration_ms,optional,snappy"`

	// TotalRecords is the number of recommendations produced by this run
	TotalRecords int32 `parquet:"total_records,snappy"`

	// Params contains the JSON-encoded request parameters (nullable)
	Params *string `parquet:"params,optional,snappy"`
}

// RunRecommendation represents one ranked recommendation within a run.
// This struct maps to the pathfinder_run_recommendations database table.
type RunRecommendation struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// Field is the career-field label
	Field string `parquet:"field,snappy"`

	// Rank is the 1-based position in the final ranking
	Rank int32 `parquet:"rank,snappy"`

	// FinalScore is the blended score
	FinalScore float64 `parquet:"final_score,snappy"`

	// InterestScore is the raw interest similarity
	InterestScore float64 `parquet:"interest_score,snappy"`

	// DemandScore is the normalized market demand
	DemandScore float64 `parquet:"demand_score,snappy"`

	// InterestContribution is the weighted interest term
	InterestContribution float64 `parquet:"interest_contribution,snappy"`

	// MarketContribution is the weighted demand term
	MarketContribution float64 `parquet:"market_contribution,snappy"`

	// Confidence is the per-run confidence grade
	Confidence string `parquet:"confidence,snappy"`

	// DeptStatus is the aggregate department eligibility status
	DeptStatus string `parquet:"dept_status,snappy"`

	// JobCount is the raw posting count for the field
	JobCount int32 `parquet:"job_count,snappy"`

	// RecordedAt is when this row was stored
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// ConvertRunRecords converts database run records to their Parquet form.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	out := make([]Run, len(records))
	for i, r := range records {
		out[i] = Run{
			RunID:        r.RunID,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			DurationMs:   r.DurationMs,
			TotalRecords: r.TotalRecords,
			Params:       r.Params,
		}
	}
	return out
}

// ConvertRunRecommendationRecords converts database recommendation rows to
// their Parquet form.
func ConvertRunRecommendationRecords(records []schema.RunRecommendationRecord) []RunRecommendation {
	out := make([]RunRecommendation, len(records))
	for i, r := range records {
		out[i] = RunRecommendation{
			RunID:                r.RunID,
			Field:                r.Field,
			Rank:                 r.Rank,
			FinalScore:           r.FinalScore,
			InterestScore:        r.InterestScore,
			DemandScore:          r.DemandScore,
			InterestContribution: r.InterestContribution,
			MarketContribution:   r.MarketContribution,
			Confidence:           r.Confidence,
			DeptStatus:           r.DeptStatus,
			JobCount:             r.JobCount,
			RecordedAt:           r.RecordedAt,
		}
	}
	return out
}

// MockFetchRuns generates sample run data for demos and manual testing.
func MockFetchRuns() []Run {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(120 * time.Millisecond)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	params1 := `{"text":"building software","top_n":5,"preset":"balanced"}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(95 * time.Millisecond)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	params2 := `{"text":"caring for patients","top_n":3,"preset":"passion-first"}`

	startTime3 := now.Add(-10 * time.Minute)
	// endTime3, durationMs3, params3 stay nil to demonstrate nullable fields

	return []Run{
		{
			RunID:        1,
			StartTime:    startTime1,
			EndTime:      &endTime1,
			DurationMs:   &durationMs1,
			TotalRecords: 5,
			Params:       &params1,
		},
		{
			RunID:        2,
			StartTime:    startTime2,
			EndTime:      &endTime2,
			DurationMs:   &durationMs2,
			TotalRecords: 3,
			Params:       &params2,
		},
		{
			RunID:        3,
			StartTime:    startTime3,
			TotalRecords: 0,
		},
	}
}

// MockFetchRunRecommendations generates sample recommendation rows for demos.
func MockFetchRunRecommendations() []RunRecommendation {
	now := time.Now()

	return []RunRecommendation{
		{
			RunID:                1,
			Field:                "Information Technology",
			Rank:                 1,
			FinalScore:           0.65,
			InterestScore:        0.5,
			DemandScore:          1.0,
			InterestContribution: 0.35,
			MarketContribution:   0.3,
			Confidence:           "High",
			DeptStatus:           "ELIGIBLE",
			JobCount:             412,
			RecordedAt:           now.Add(-2 * time.Hour),
		},
		{
			RunID:                1,
			Field:                "Engineering",
			Rank:                 2,
			FinalScore:           0.31,
			InterestScore:        0.22,
			DemandScore:          0.52,
			InterestContribution: 0.15,
			MarketContribution:   0.16,
			Confidence:           "High",
			DeptStatus:           "ASPIRATIONAL",
			JobCount:             214,
			RecordedAt:           now.Add(-2 * time.Hour),
		},
		{
			RunID:                2,
			Field:                "Healthcare & Medical",
			Rank:                 1,
			FinalScore:           0.58,
			InterestScore:        0.61,
			DemandScore:          0.49,
			InterestContribution: 0.43,
			MarketContribution:   0.15,
			Confidence:           "Medium",
			DeptStatus:           "NOT_ELIGIBLE",
			JobCount:             202,
			RecordedAt:           now.Add(-24 * time.Hour),
		},
	}
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunRecommendationsParquet writes a slice of RunRecommendation structs
// to a Parquet file.
func WriteRunRecommendationsParquet(data []RunRecommendation, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RunRecommendation](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
