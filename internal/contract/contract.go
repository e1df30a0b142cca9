// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// InterestScorer maps free text to per-field similarity scores in [0,1].
// Scores are independent per field, not a probability distribution. The engine
// treats the scorer as an opaque oracle; implementations must be stateless or
// otherwise safe for concurrent use.
type InterestScorer interface {
	Classify(text string) map[string]float64

	// Fields returns the enumerable set of career-field labels the scorer
	// can produce.
	Fields() []string
}

// KeywordMatcher is an optional upgrade interface for scorers that can report
// which of the student's own words matched a field's taxonomy. The engine uses
// it for rationale text only; scorers without it simply produce the holistic
// template.
type KeywordMatcher interface {
	MatchedKeywords(text, field string) []string
}

// DemandTable exposes job-posting counts per career field.
// Tables are loaded once at startup and treated as read-only afterwards.
type DemandTable interface {
	// Lookup returns the job count for a field, 0 when the field is absent.
	Lookup(field string) int

	// MaxCount returns the largest job count across all fields, used for
	// demand-score normalization.
	MaxCount() int

	// TopFields returns up to n field labels ranked by job count descending.
	TopFields(n int) []string
}

// Catalog exposes static skills and admission programs per career field.
type Catalog interface {
	// SkillsFor returns the ranked skill list for a field, possibly empty.
	SkillsFor(field string) []string

	// ProgramsFor returns the admission program names for a field.
	ProgramsFor(field string) []string
}

// RequirementsTable exposes admission rules per program.
type RequirementsTable interface {
	// Lookup resolves a program name using case-insensitive substring match
	// in either direction. The second return is false when no entry matches.
	Lookup(program string) (schema.ProgramRequirement, bool)

	// All returns every requirement entry, used for diploma-rescue scanning.
	All() []schema.ProgramRequirement
}

// JobsTable exposes sample job postings per career field.
type JobsTable interface {
	// JobsFor returns up to n sample postings for a field, possibly empty.
	JobsFor(field string, n int) []schema.JobPosting
}

// RunStore defines the interface for persisting recommendation runs.
// This allows mocking the store for testing.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, params map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalRecords int) error

	// RecordRecommendation stores one ranked recommendation for a run.
	RecordRecommendation(runID int64, rank int, rec schema.Recommendation) error

	// ListRuns returns all run metadata rows in run order.
	ListRuns() ([]schema.RunRecord, error)

	// ListRecommendations returns all stored recommendation rows in run order.
	ListRecommendations() ([]schema.RunRecommendationRecord, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStoreStatus, error)

	// Clear removes all stored runs and recommendations.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// RunStoreManager defines the interface for accessing the run store.
type RunStoreManager interface {
	GetRunStore() RunStore
}
