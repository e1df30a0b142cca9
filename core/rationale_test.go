package core

import (
	"testing"

	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/stretchr/testify/assert"
)

// TestGenerateRationaleDeterminism is the explainability contract: identical
// inputs must produce byte-identical text.
func TestGenerateRationaleDeterminism(t *testing.T) {
	for _, status := range AllRationaleStatuses() {
		t.Run(string(status), func(t *testing.T) {
			first := GenerateRationale(status, "Information Technology", 0.62, 42, "Software Development",
				[]string{"coding", "software"}, []string{"Software Development", "Systems Analysis", "Cybersecurity"})
			second := GenerateRationale(status, "Information Technology", 0.62, 42, "Software Development",
				[]string{"coding", "software"}, []string{"Software Development", "Systems Analysis", "Cybersecurity"})
			assert.Equal(t, first, second)
			assert.NotEmpty(t, first.Academic)
			assert.NotEmpty(t, first.Market)
			assert.NotEmpty(t, first.Trajectory)
		})
	}
}

// AllRationaleStatuses enumerates the template branches under test.
func AllRationaleStatuses() []schema.DeptStatus {
	return []schema.DeptStatus{
		schema.DeptEligible,
		schema.DeptEligibleDiploma,
		schema.DeptAspirational,
		schema.DeptNotEligible,
		schema.DeptUnknown,
	}
}

// TestGenerateRationaleBranches spot-checks per-status wording.
func TestGenerateRationaleBranches(t *testing.T) {
	skills := []string{"Legal Research", "Jurisprudence", "Litigation"}

	t.Run("not eligible mentions the block", func(t *testing.T) {
		r := GenerateRationale(schema.DeptNotEligible, "Law", 0.5, 10, "Legal Research", nil, skills)
		assert.Contains(t, r.Academic, "does not yet meet")
		assert.Contains(t, r.Market, "10 jobs")
	})

	t.Run("diploma pathway", func(t *testing.T) {
		r := GenerateRationale(schema.DeptEligibleDiploma, "Law", 0.5, 10, "Legal Research", nil, skills)
		assert.Contains(t, r.Academic, "Diploma in Law")
		assert.Contains(t, r.Trajectory, "credit transfer")
	})

	t.Run("aspirational", func(t *testing.T) {
		r := GenerateRationale(schema.DeptAspirational, "Law", 0.5, 10, "Legal Research", nil, skills)
		assert.Contains(t, r.Academic, "very close to qualifying")
	})

	t.Run("eligible with matched keywords", func(t *testing.T) {
		r := GenerateRationale(schema.DeptEligible, "Law", 0.5, 10, "Legal Research",
			[]string{"justice", "courts", "contracts", "extra"}, skills)
		assert.Contains(t, r.Academic, "justice, courts, contracts")
		assert.NotContains(t, r.Academic, "extra") // capped at three
	})

	t.Run("eligible without keywords is holistic", func(t *testing.T) {
		r := GenerateRationale(schema.DeptEligible, "Law", 0.5, 10, "Legal Research", nil, skills)
		assert.Contains(t, r.Academic, "Holistic Fit")
	})

	t.Run("short skill lists fall back", func(t *testing.T) {
		r := GenerateRationale(schema.DeptEligible, "Law", 0.5, 10, "", nil, nil)
		assert.Contains(t, r.Academic, "specialized techniques")
		assert.Contains(t, r.Market, "industry tools")
		assert.Contains(t, r.Trajectory, "strategic thinking")
	})
}

// TestMarketOutlook checks the job-count bands.
func TestMarketOutlook(t *testing.T) {
	assert.Contains(t, MarketOutlook(100), "Excellent")
	assert.Contains(t, MarketOutlook(31), "Excellent")
	assert.Contains(t, MarketOutlook(30), "Stable")
	assert.Contains(t, MarketOutlook(1), "Stable")
	assert.Contains(t, MarketOutlook(0), "Competitive")
}

// TestWhyBest checks the strategy branch order.
func TestWhyBest(t *testing.T) {
	t.Run("passion preset wins", func(t *testing.T) {
		s := WhyBest(0.9, 0.1, true, true, 0.9, 0.1, 10, "IT")
		assert.Contains(t, s, "Passion-First")
	})
	t.Run("market preset", func(t *testing.T) {
		s := WhyBest(0.3, 0.7, false, false, 0.1, 0.9, 10, "IT")
		assert.Contains(t, s, "Market-First")
	})
	t.Run("interdisciplinary", func(t *testing.T) {
		s := WhyBest(0.7, 0.3, true, true, 0.4, 0.4, 10, "IT")
		assert.Contains(t, s, "Interdisciplinary")
	})
	t.Run("personal strength", func(t *testing.T) {
		s := WhyBest(0.7, 0.3, false, false, 0.8, 0.1, 10, "IT")
		assert.Contains(t, s, "Personal Strength")
	})
	t.Run("strategic choice", func(t *testing.T) {
		s := WhyBest(0.7, 0.3, false, false, 0.1, 0.8, 10, "IT")
		assert.Contains(t, s, "Strategic Choice")
	})
	t.Run("sweet spot", func(t *testing.T) {
		s := WhyBest(0.7, 0.3, false, false, 0.5, 0.5, 10, "IT")
		assert.Contains(t, s, "Sweet Spot")
	})
}
