//go:build integration

// Package integration contains integration tests for pathfinder.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonRecommendation mirrors the fields the verification needs from the CLI's
// JSON output.
type jsonRecommendation struct {
	Rank                 int     `json:"rank"`
	Field                string  `json:"field"`
	FinalScore           float64 `json:"final_score"`
	InterestContribution float64 `json:"interest_contribution"`
	MarketContribution   float64 `json:"market_contribution"`
	Confidence           string  `json:"confidence"`
	DeptStatus           string  `json:"dept_status"`
}

// TestRecommendScoreDecomposition runs the CLI with JSON output and verifies
// that every final score equals the sum of its two contributions and that the
// ranking is consistent with the scores.
func TestRecommendScoreDecomposition(t *testing.T) {
	output, err := runPathfinderCommand(t,
		"recommend", "I love programming computers and building software",
		"--output", "json", "--run-backend", "none")
	require.NoError(t, err)

	var recs []jsonRecommendation
	require.NoError(t, json.Unmarshal([]byte(output), &recs))
	require.NotEmpty(t, recs)

	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Rank)
		assert.InDelta(t, rec.FinalScore, rec.InterestContribution+rec.MarketContribution, 1e-9,
			"score decomposition mismatch for %s", rec.Field)
		assert.NotEmpty(t, rec.Confidence)
		assert.NotEmpty(t, rec.DeptStatus)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].FinalScore, rec.FinalScore)
		}
	}
}

// TestEligibilityAgainstKnownTranscript verifies the CLI end to end with a
// transcript written to disk.
func TestEligibilityAgainstKnownTranscript(t *testing.T) {
	transcript := t.TempDir() + "/transcript.json"
	writeFile(t, transcript, `{
		"mean_grade": "A",
		"subjects": {
			"Mathematics": "A",
			"English": "A",
			"Physics": "A",
			"Chemistry": "A",
			"Biology": "A"
		}
	}`)

	output, err := runPathfinderCommand(t,
		"eligibility", "Computer Science",
		"--transcript", transcript, "--output", "json", "--run-backend", "none")
	require.NoError(t, err)

	var results []struct {
		Program string `json:"program"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "ELIGIBLE", results[0].Status)
}
