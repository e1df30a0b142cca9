// Package schema has configs, models and shared constants for all parts of pathfinder.
package schema

// Transcript represents a student's national exam results.
// It includes the aggregate mean grade plus per-subject grades. Grade symbols
// are drawn from the 13-symbol ordinal scale (see GradePoints); unknown symbols
// are treated as zero points rather than errors.
type Transcript struct {
	MeanGrade string            `json:"mean_grade"`
	Subjects  map[string]string `json:"subjects"`
}

// EligibilityResult is the outcome of evaluating one program against a transcript.
type EligibilityResult struct {
	Status EligibilityStatus `json:"status"`
	Reason string            `json:"reason"`
}

// ProgramEligibility pairs a program name with its evaluation outcome.
// Used for ordered display of standalone eligibility checks.
type ProgramEligibility struct {
	Program string            `json:"program"`
	Status  EligibilityStatus `json:"status"`
	Reason  string            `json:"reason"`
}

// DemandEntry is one row of the job-market demand table.
type DemandEntry struct {
	Field    string `json:"field"`
	JobCount int    `json:"job_count"`
}

// Rationale is the three-layer explanation attached to every recommendation.
// The wording branches on the department status; identical inputs always
// produce identical text.
type Rationale struct {
	Academic   string `json:"academic"`
	Market     string `json:"market"`
	Trajectory string `json:"trajectory"`
}

// Baselines holds the comparative rankings attached to each returned record
// so downstream consumers can show how the hybrid ranking differs from the
// single-signal ones.
type Baselines struct {
	InterestOnly []string `json:"interest_only"`
	MarketOnly   []string `json:"market_only"`
	Hybrid       []string `json:"hybrid"`
}

// JobPosting is a sample job listing surfaced alongside a recommendation.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Field       string `json:"field"`
	Description string `json:"description,omitempty"`
}

// Recommendation represents one ranked career-field suggestion.
// It is constructed fresh on every recommend pass and never mutated after
// construction. InterestContribution and MarketContribution are the two
// additive terms of FinalScore, exposed separately for explainability.
type Recommendation struct {
	Field                string                       `json:"field"`
	FinalScore           float64                      `json:"final_score"`
	InterestScore        float64                      `json:"interest_score"`
	DemandScore          float64                      `json:"demand_score"`
	InterestContribution float64                      `json:"interest_contribution"`
	MarketContribution   float64                      `json:"market_contribution"`
	Confidence           Confidence                   `json:"confidence"`
	ConfidenceReason     string                       `json:"confidence_reason"`
	Skills               []string                     `json:"skills"`
	Programs             []string                     `json:"programs"`
	Eligibility          map[string]EligibilityResult `json:"eligibility"`
	DeptStatus           DeptStatus                   `json:"dept_status"`
	Rationale            Rationale                    `json:"rationale"`
	WhyBest              string                       `json:"why_best"`
	MarketOutlook        string                       `json:"market_outlook"`
	JobCount             int                          `json:"job_count"`
	SampleJobs           []JobPosting                 `json:"sample_jobs,omitempty"`
	MixedInterest        bool                         `json:"mixed_interest"`
	LowSignal            bool                         `json:"low_signal"`
	Baselines            Baselines                    `json:"baselines"`
}
