package core

import (
	"testing"

	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/stretchr/testify/assert"
)

// TestRankRecommendations covers ordering, tie-breaking and truncation.
func TestRankRecommendations(t *testing.T) {
	recs := []schema.Recommendation{
		{Field: "Law", FinalScore: 0.10},
		{Field: "Information Technology", FinalScore: 0.65},
		{Field: "Business", FinalScore: 0.10},
		{Field: "Engineering", FinalScore: 0.40},
	}

	t.Run("descending with label tie-break", func(t *testing.T) {
		got := rankRecommendations(append([]schema.Recommendation{}, recs...), 10)
		fields := make([]string, len(got))
		for i, r := range got {
			fields[i] = r.Field
		}
		assert.Equal(t, []string{"Information Technology", "Engineering", "Business", "Law"}, fields)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		got := rankRecommendations(append([]schema.Recommendation{}, recs...), 2)
		assert.Len(t, got, 2)
		assert.Equal(t, "Information Technology", got[0].Field)
	})

	t.Run("limit above length returns all", func(t *testing.T) {
		got := rankRecommendations([]schema.Recommendation{{Field: "IT", FinalScore: 0.5}}, 5)
		assert.Len(t, got, 1)
	})
}

// TestResolver checks alias resolution and the pass-through default.
func TestResolver(t *testing.T) {
	r := DefaultResolver()
	assert.Equal(t, "IT", r.CatalogKey("Information Technology"))
	assert.Equal(t, "IT", r.CatalogKey("Data Science & Analytics"))
	assert.Equal(t, "Legal & Compliance", r.DemandKey("Law"))
	assert.Equal(t, "Engineering", r.CatalogKey("Engineering"))
	assert.Equal(t, "Engineering", r.DemandKey("Engineering"))
}

// TestResolveSkills prefers the catalog and degrades through the fallbacks.
func TestResolveSkills(t *testing.T) {
	catalog := []string{"Software Development", "Systems Analysis"}
	assert.Equal(t, catalog, resolveSkills("IT", catalog))

	// Sparse entry falls back to the per-category table.
	fb := resolveSkills("IT", []string{"Software Development"})
	assert.NotEmpty(t, fb)
	assert.NotEqual(t, []string{"Software Development"}, fb)

	// Unknown category gets the generic list.
	generic := resolveSkills("Underwater Basket Weaving", nil)
	assert.Equal(t, fallbackSkills.Generic, generic)
}
