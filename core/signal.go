package core

import (
	"sort"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// Signal summarizes the strength and shape of a request's interest scores.
// It is computed once per recommend pass and shared by every returned record.
type Signal struct {
	// TopField is the highest-scoring field label.
	TopField string

	// TopScores holds up to the three highest interest scores, descending.
	TopScores []float64

	// LowSignal is set when the strongest score is below the low-signal
	// threshold; it triggers the weight override and the relaxed admission
	// threshold for the whole pass.
	LowSignal bool

	// MixedInterest is set when the top two scores are nearly tied,
	// meaning the student has no single dominant passion.
	MixedInterest bool
}

// DetectSignal computes the pass-wide signal flags from raw interest scores.
// Ties between fields break on label order so results stay deterministic.
func DetectSignal(scores map[string]float64) Signal {
	type fieldScore struct {
		field string
		score float64
	}

	ranked := make([]fieldScore, 0, len(scores))
	for field, score := range scores {
		ranked = append(ranked, fieldScore{field, score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].field < ranked[j].field
	})

	sig := Signal{}
	for i, fs := range ranked {
		if i >= 3 {
			break
		}
		sig.TopScores = append(sig.TopScores, fs.score)
	}
	if len(ranked) > 0 {
		sig.TopField = ranked[0].field
		sig.LowSignal = ranked[0].score < lowSignalThreshold
	}
	if len(ranked) > 1 {
		sig.MixedInterest = ranked[0].score-ranked[1].score < mixedInterestGap
	}
	return sig
}

// AdmitThreshold returns the inclusion threshold on raw interest score.
// Low-signal passes lower the bar significantly to keep some results.
func (s Signal) AdmitThreshold() float64 {
	if s.LowSignal {
		return lowSignalAdmitThreshold
	}
	return admitThreshold
}

// Confidence grades how much the interest signal can be trusted. A High grade
// additionally requires market corroboration: when the top field has five or
// fewer postings, confidence caps at Medium even for a strong signal.
func (s Signal) Confidence(topFieldJobCount int) (schema.Confidence, string) {
	if len(s.TopScores) == 0 || s.LowSignal {
		return schema.LowConfidence, "Input contains sparse career-specific keywords."
	}

	var sum float64
	for _, score := range s.TopScores {
		sum += score
	}
	mean := sum / float64(len(s.TopScores))

	if mean > highConfidenceMean {
		if topFieldJobCount > minPostingsForHigh {
			return schema.HighConfidence, "Strong alignment between input and career taxonomies."
		}
		return schema.MediumConfidence, "Strong interest signal but limited market data for corroboration."
	}
	return schema.MediumConfidence, "Moderate keyword signal detected."
}
