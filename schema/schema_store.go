package schema

import "time"

// RunStoreStatus represents the status of the recommendation run store.
type RunStoreStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalRecords  int              `json:"total_records"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the pathfinder_runs table.
type RunRecord struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int32
	TotalRecords int32
	Params       *string
}

// RunRecommendationRecord represents a row from the pathfinder_run_recommendations table.
type RunRecommendationRecord struct {
	RunID                int64
	Field                string
	Rank                 int32
	FinalScore           float64
	InterestScore        float64
	DemandScore          float64
	InterestContribution float64
	MarketContribution   float64
	Confidence           string
	DeptStatus           string
	JobCount             int32
	RecordedAt           time.Time
}
