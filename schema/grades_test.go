package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGradePoints checks the fixed ordinal scale.
func TestGradePoints(t *testing.T) {
	tests := []struct {
		symbol   string
		expected int
	}{
		{"A", 12},
		{"A-", 11},
		{"B+", 10},
		{"C+", 7},
		{"E", 1},
		{"N/A", 0},
		{"", 0},
		{"Z", 0}, // unknown symbols degrade to zero
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.expected, GradePoints(tt.symbol))
		})
	}
}

// TestGradeSymbolRoundTrip ensures every symbol survives a points round trip.
func TestGradeSymbolRoundTrip(t *testing.T) {
	for pts := 1; pts <= MaxGradePoints; pts++ {
		sym := GradeSymbol(pts)
		assert.Equal(t, pts, GradePoints(sym))
	}

	t.Run("off scale", func(t *testing.T) {
		assert.Equal(t, "N/A", GradeSymbol(99))
		assert.Equal(t, "N/A", GradeSymbol(-1))
	})
}

// TestTranscriptAccessors checks transcript point lookups.
func TestTranscriptAccessors(t *testing.T) {
	tr := &Transcript{
		MeanGrade: "B+",
		Subjects:  map[string]string{"Mathematics": "A", "Physics": "B"},
	}

	assert.Equal(t, 10, tr.MeanGradePoints())
	assert.Equal(t, 12, tr.SubjectGrade("Mathematics"))
	assert.Equal(t, 9, tr.SubjectGrade("Physics"))
	assert.Equal(t, 0, tr.SubjectGrade("History"))
}
