// Package scorer implements the default interest scorer: a keyword-taxonomy
// TF-IDF cosine similarity over per-field keyword corpora, with a handful of
// contextual disambiguation boosts. It is deliberately a plain lexical model;
// anything smarter plugs in behind the same contract.
package scorer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
)

//go:embed taxonomy.json
var defaultTaxonomyJSON []byte

// Scorer scores free text against the career-field keyword taxonomy.
// Vectors are precomputed at load time; Classify is read-only and safe for
// concurrent use.
type Scorer struct {
	fields   []string
	keywords map[string][]string
	model    *tfidfModel
}

var _ contract.InterestScorer = &Scorer{}  // Compile-time check
var _ contract.KeywordMatcher = &Scorer{}  // Compile-time check

// Load builds a scorer from a taxonomy JSON file mapping field labels to
// keyword lists. An empty path loads the embedded default taxonomy.
func Load(path string) (*Scorer, error) {
	data := defaultTaxonomyJSON
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	var taxonomy map[string][]string
	if err := json.Unmarshal(data, &taxonomy); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	fields := make([]string, 0, len(taxonomy))
	for field, keywords := range taxonomy {
		if len(keywords) == 0 {
			continue // catch-all buckets carry no signal
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	docs := make([]string, len(fields))
	for i, field := range fields {
		processed := make([]string, 0, len(taxonomy[field]))
		for _, kw := range taxonomy[field] {
			processed = append(processed, preprocess(kw))
		}
		docs[i] = strings.Join(processed, " ")
	}

	return &Scorer{
		fields:   fields,
		keywords: taxonomy,
		model:    fitTFIDF(docs),
	}, nil
}

// Classify returns a per-field similarity score in [0,1] for the given text.
// Fields with no lexical overlap score zero; an empty result only happens on
// empty input.
func (s *Scorer) Classify(text string) map[string]float64 {
	processed := preprocess(text)
	if processed == "" {
		return map[string]float64{}
	}
	query := s.model.vectorize(processed)

	lower := strings.ToLower(text)
	scores := make(map[string]float64, len(s.fields))
	for i, field := range s.fields {
		scores[field] = disambiguate(field, lower, s.model.similarity(query, i))
	}
	return scores
}

// Fields returns the taxonomy's field labels in sorted order.
func (s *Scorer) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// MatchedKeywords returns the field's taxonomy keywords present verbatim in
// the text's token set, in taxonomy order. Multi-word keywords never match;
// they exist for the vector model, not for explanations.
func (s *Scorer) MatchedKeywords(text, field string) []string {
	tokens := tokenSet(preprocess(text))
	var matched []string
	for _, kw := range s.keywords[field] {
		if tokens[preprocess(kw)] {
			matched = append(matched, kw)
		}
	}
	return matched
}

// disambiguate applies the contextual heuristics that pure lexical overlap
// gets wrong: "building" in a coding context points at software, not
// construction, and clinical vocabulary reinforces healthcare.
func disambiguate(field, lower string, score float64) float64 {
	if strings.Contains(lower, "build") {
		techContext := false
		for _, w := range []string{"app", "software", "code", "python", "java", "script", "mobile", "web"} {
			if strings.Contains(lower, w) {
				techContext = true
				break
			}
		}
		if techContext {
			switch field {
			case "Information Technology":
				score *= 1.2
			case "Engineering", "Architecture & Construction":
				score *= 0.6
			}
		}
	}

	if strings.Contains(lower, "doctor") || strings.Contains(lower, "patient") {
		if field == "Healthcare & Medical" {
			score *= 1.1
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}

func tokenSet(processed string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(processed) {
		set[tok] = true
	}
	return set
}
