package scorer

import (
	"math"
	"strings"
)

// tfidfModel holds the fitted vocabulary, per-term inverse document
// frequencies and the L2-normalized document vectors.
type tfidfModel struct {
	vocab map[string]int
	idf   []float64
	docs  [][]float64
}

// fitTFIDF fits the model over preprocessed documents, one per field.
// Smoothed IDF (ln((1+n)/(1+df)) + 1) keeps terms that appear in every
// document from vanishing entirely.
func fitTFIDF(documents []string) *tfidfModel {
	m := &tfidfModel{vocab: make(map[string]int)}

	counts := make([]map[string]int, len(documents))
	for i, doc := range documents {
		counts[i] = make(map[string]int)
		for _, tok := range strings.Fields(doc) {
			counts[i][tok]++
			if _, ok := m.vocab[tok]; !ok {
				m.vocab[tok] = len(m.vocab)
			}
		}
	}

	df := make([]int, len(m.vocab))
	for _, c := range counts {
		for tok := range c {
			df[m.vocab[tok]]++
		}
	}

	n := float64(len(documents))
	m.idf = make([]float64, len(m.vocab))
	for i, d := range df {
		m.idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	m.docs = make([][]float64, len(documents))
	for i, c := range counts {
		vec := make([]float64, len(m.vocab))
		for tok, count := range c {
			idx := m.vocab[tok]
			vec[idx] = float64(count) * m.idf[idx]
		}
		normalize(vec)
		m.docs[i] = vec
	}
	return m
}

// vectorize maps a preprocessed query to the fitted vocabulary. Terms not in
// the vocabulary are dropped.
func (m *tfidfModel) vectorize(processed string) []float64 {
	vec := make([]float64, len(m.vocab))
	for _, tok := range strings.Fields(processed) {
		if idx, ok := m.vocab[tok]; ok {
			vec[idx] += m.idf[idx]
		}
	}
	normalize(vec)
	return vec
}

// similarity is the cosine between a normalized query and document i.
func (m *tfidfModel) similarity(query []float64, i int) float64 {
	dot := 0.0
	for idx, q := range query {
		if q != 0 {
			dot += q * m.docs[i][idx]
		}
	}
	return dot
}

func normalize(vec []float64) {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
