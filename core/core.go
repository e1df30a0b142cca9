// Package core implements the recommendation and eligibility engine.
//
// The engine is a pure function of its inputs plus read-only reference tables
// (demand, catalog, requirements, jobs) that are loaded once at startup. It
// performs no I/O in the hot path and is safe to call concurrently as long as
// the configured InterestScorer is itself reentrant.
package core

// Signal-strength and filtering thresholds. These are behavioral constants of
// the scoring pipeline, not tunables: the low-signal override in particular
// replaces the caller's weighting policy system-wide for a single pass when
// the strongest interest score is too weak to trust.
const (
	// lowSignalThreshold marks a pass as low-signal when the strongest
	// interest score falls below it.
	lowSignalThreshold = 0.15

	// Effective weights substituted for every field of a low-signal pass.
	lowSignalAlpha = 0.3
	lowSignalBeta  = 0.7

	// Inclusion thresholds on raw interest score, applied before blending.
	admitThreshold          = 0.08
	lowSignalAdmitThreshold = 0.02

	// mixedInterestGap flags a student with no single dominant passion.
	mixedInterestGap = 0.05

	// highConfidenceMean is the minimum mean of the top-3 interest scores
	// for a High confidence grade.
	highConfidenceMean = 0.4

	// minPostingsForHigh caps confidence at Medium when the top field has
	// too little market data to corroborate a strong interest signal.
	minPostingsForHigh = 5

	// fallbackFieldCount is how many fields the empty-result fallback keeps.
	fallbackFieldCount = 3

	// baselineSize is the length of the comparative baseline rankings.
	baselineSize = 5
)
