package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) *Scorer {
	t.Helper()
	s, err := Load("")
	require.NoError(t, err)
	return s
}

func TestClassifyRanksRelevantField(t *testing.T) {
	s := loadDefault(t)

	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"software interest", "I love coding and building software with python", "Information Technology"},
		{"medical interest", "I want to help patients as a nurse in a hospital", "Healthcare & Medical"},
		{"legal interest", "I am passionate about justice, courts and litigation", "Law"},
		{"farming interest", "I enjoy farming, livestock and crop production", "Agriculture & Environmental"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := s.Classify(tt.text)
			require.NotEmpty(t, scores)

			best, bestScore := "", -1.0
			for field, score := range scores {
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
				if score > bestScore {
					best, bestScore = field, score
				}
			}
			assert.Equal(t, tt.field, best)
		})
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	s := loadDefault(t)
	assert.Empty(t, s.Classify(""))
	assert.Empty(t, s.Classify("   12345 !!! "))
}

func TestClassifyDeterministic(t *testing.T) {
	s := loadDefault(t)
	first := s.Classify("software developer who loves data")
	second := s.Classify("software developer who loves data")
	assert.Equal(t, first, second)
}

// TestDisambiguation: "building" with coding context boosts IT and penalizes
// the construction fields relative to the raw lexical scores.
func TestDisambiguation(t *testing.T) {
	s := loadDefault(t)

	withContext := s.Classify("I enjoy building mobile apps and writing code")
	withoutContext := s.Classify("I enjoy building things")

	assert.Greater(t, withContext["Information Technology"], withContext["Architecture & Construction"])
	// Without tech context, construction keeps its raw lexical standing.
	assert.Positive(t, withoutContext["Engineering"])
}

func TestDisambiguationClamped(t *testing.T) {
	score := disambiguate("Information Technology", "building apps software code python java web mobile", 0.95)
	assert.LessOrEqual(t, score, 1.0)
}

func TestFields(t *testing.T) {
	s := loadDefault(t)
	fields := s.Fields()
	assert.NotEmpty(t, fields)
	assert.Contains(t, fields, "Information Technology")
	assert.IsNonDecreasing(t, fields)

	// Mutating the returned slice must not affect the scorer.
	fields[0] = "Mutated"
	assert.NotContains(t, s.Fields(), "Mutated")
}

func TestMatchedKeywords(t *testing.T) {
	s := loadDefault(t)

	matched := s.MatchedKeywords("I love coding and software", "Information Technology")
	assert.Contains(t, matched, "software")
	assert.Contains(t, matched, "coding")

	assert.Empty(t, s.MatchedKeywords("I love coding", "Law"))
	// Multi-word keywords never match verbatim.
	assert.NotContains(t, s.MatchedKeywords("machine learning is fun", "Information Technology"), "machine learning")
}

func TestLoadCustomTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Astronomy":["telescope","stars"],"Other":[]}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Astronomy"}, s.Fields())

	scores := s.Classify("I watch stars through my telescope")
	assert.Positive(t, scores["Astronomy"])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("/nonexistent/taxonomy.json")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "decode taxonomy")
}

func TestPreprocess(t *testing.T) {
	assert.Equal(t, "love coding software", preprocess("I really love coding and software!"))
	assert.Equal(t, "robot engine", preprocess("robots and engines"))
	assert.Equal(t, "", preprocess("1234 !!!"))
	assert.Equal(t, "machine learning", preprocess("machine-learning"))
}
