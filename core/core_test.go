package core

import (
	"sort"
	"strings"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// Test fakes for the engine's collaborators. They mirror the loader-backed
// implementations closely enough for pipeline tests without any file I/O.

type fakeScorer struct {
	scores  map[string]float64
	matches map[string][]string
}

func (f *fakeScorer) Classify(string) map[string]float64 {
	return f.scores
}

func (f *fakeScorer) Fields() []string {
	fields := make([]string, 0, len(f.scores))
	for field := range f.scores {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (f *fakeScorer) MatchedKeywords(_, field string) []string {
	return f.matches[field]
}

type fakeDemand struct {
	counts map[string]int
}

func (f *fakeDemand) Lookup(field string) int {
	return f.counts[field]
}

func (f *fakeDemand) MaxCount() int {
	maxCount := 0
	for _, c := range f.counts {
		if c > maxCount {
			maxCount = c
		}
	}
	return maxCount
}

func (f *fakeDemand) TopFields(n int) []string {
	fields := make([]string, 0, len(f.counts))
	for field := range f.counts {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		if f.counts[fields[i]] != f.counts[fields[j]] {
			return f.counts[fields[i]] > f.counts[fields[j]]
		}
		return fields[i] < fields[j]
	})
	if len(fields) > n {
		fields = fields[:n]
	}
	return fields
}

type fakeCatalog struct {
	skills   map[string][]string
	programs map[string][]string
}

func (f *fakeCatalog) SkillsFor(field string) []string {
	return f.skills[field]
}

func (f *fakeCatalog) ProgramsFor(field string) []string {
	return f.programs[field]
}

type fakeReqs struct {
	entries []schema.ProgramRequirement
}

func (f *fakeReqs) Lookup(program string) (schema.ProgramRequirement, bool) {
	needle := strings.ToLower(program)
	for _, req := range f.entries {
		name := strings.ToLower(req.Name)
		if strings.Contains(needle, name) || strings.Contains(name, needle) {
			return req, true
		}
	}
	return schema.ProgramRequirement{}, false
}

func (f *fakeReqs) All() []schema.ProgramRequirement {
	return f.entries
}

type fakeJobs struct {
	postings map[string][]schema.JobPosting
}

func (f *fakeJobs) JobsFor(field string, n int) []schema.JobPosting {
	jobs := f.postings[field]
	if len(jobs) > n {
		jobs = jobs[:n]
	}
	return jobs
}
