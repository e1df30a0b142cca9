package core

import (
	"sort"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// rankRecommendations sorts records by final score in descending order and
// returns the top 'limit' entries. Ties break on field label so the ranking
// stays deterministic. If limit exceeds the number of records, all records
// are returned in sorted order.
func rankRecommendations(recs []schema.Recommendation, limit int) []schema.Recommendation {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].FinalScore != recs[j].FinalScore {
			return recs[i].FinalScore > recs[j].FinalScore
		}
		return recs[i].Field < recs[j].Field
	})
	if len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
