package core

import (
	"errors"
	"sort"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// ErrNoRecommendations signals that the interest scorer produced no fields at
// all. Every other degradation (missing demand rows, sparse catalog entries,
// unknown programs) substitutes a safe default and continues.
var ErrNoRecommendations = errors.New("interest scorer returned no fields")

// Engine composes the scorer, reference tables, evaluator and rationale
// generation into the end-to-end recommend operation. All tables are
// read-only; the engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	scorer   contract.InterestScorer
	demand   contract.DemandTable
	catalog  contract.Catalog
	reqs     contract.RequirementsTable
	jobs     contract.JobsTable
	eval     *Evaluator
	resolver *Resolver
}

// NewEngine wires an engine from its collaborators. The jobs table may be nil
// when no sample postings are available; the resolver defaults to the
// standard field taxonomy when nil.
func NewEngine(scorer contract.InterestScorer, demand contract.DemandTable, catalog contract.Catalog, reqs contract.RequirementsTable, jobs contract.JobsTable, resolver *Resolver) *Engine {
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return &Engine{
		scorer:   scorer,
		demand:   demand,
		catalog:  catalog,
		reqs:     reqs,
		jobs:     jobs,
		eval:     NewEvaluator(reqs),
		resolver: resolver,
	}
}

// Request carries the inputs of one recommend pass.
type Request struct {
	Text       string
	TopN       int
	Alpha      float64
	Beta       float64
	Transcript *schema.Transcript
	SampleJobs int
}

// Recommend runs the full pipeline: classify, detect signal, filter, blend,
// evaluate eligibility, explain, rank and truncate. It guarantees at least
// one record whenever the scorer returns a non-empty map; the threshold
// filter falling through triggers the exploratory fallback instead of an
// empty result.
func (e *Engine) Recommend(req Request) ([]schema.Recommendation, error) {
	scores := e.scorer.Classify(req.Text)
	if len(scores) == 0 {
		return nil, ErrNoRecommendations
	}

	if req.Alpha == 0 && req.Beta == 0 {
		w := schema.GetPresetWeights(schema.BalancedPreset)
		req.Alpha, req.Beta = w.Alpha, w.Beta
	}
	if req.TopN <= 0 {
		req.TopN = contract.DefaultTopN
	}

	sig := DetectSignal(scores)
	confidence, confReason := sig.Confidence(e.jobCount(sig.TopField))
	baselines := e.baselines(scores)

	// Main pass: threshold filter, then a full record per surviving field.
	// Fields iterate in sorted order so output is deterministic.
	var recs []schema.Recommendation
	for _, field := range sortedFields(scores) {
		interest := scores[field]
		if interest < sig.AdmitThreshold() {
			continue
		}
		recs = append(recs, e.buildRecord(field, interest, req, sig, confidence, confReason, baselines))
	}

	// Fallback: never return empty for a non-empty score map. Take the top
	// fields by raw interest regardless of threshold, with demand and
	// eligibility still computed, and force Low confidence.
	if len(recs) == 0 {
		for _, field := range rankFieldsByScore(scores, fallbackFieldCount) {
			recs = append(recs, e.buildRecord(field, scores[field], req, sig, schema.LowConfidence, "Analysis of exploratory interest only.", baselines))
		}
	}

	recs = rankRecommendations(recs, req.TopN)

	// Inject the final hybrid ranking into every record's baseline context.
	hybrid := make([]string, len(recs))
	for i, rec := range recs {
		hybrid[i] = rec.Field
	}
	for i := range recs {
		recs[i].Baselines.Hybrid = hybrid
	}

	return recs, nil
}

// buildRecord assembles one recommendation: blend, eligibility aggregation,
// rationale and market context. Used by both the main pass and the fallback.
func (e *Engine) buildRecord(field string, interest float64, req Request, sig Signal, confidence schema.Confidence, confReason string, baselines schema.Baselines) schema.Recommendation {
	jobCount := e.jobCount(field)
	demandScore := 0.0
	if maxCount := e.demand.MaxCount(); maxCount > 0 {
		demandScore = float64(jobCount) / float64(maxCount)
	}

	final, interestContrib, marketContrib := Blend(interest, demandScore, req.Alpha, req.Beta, sig.LowSignal)

	catalogKey := e.resolver.CatalogKey(field)
	skills := resolveSkills(catalogKey, e.catalog.SkillsFor(catalogKey))
	programs := e.catalog.ProgramsFor(catalogKey)

	deptStatus, eligibility := e.aggregateEligibility(field, programs, req.Transcript)

	var matched []string
	if km, ok := e.scorer.(contract.KeywordMatcher); ok {
		matched = km.MatchedKeywords(req.Text, field)
	}
	primarySkill := ""
	if len(skills) > 0 {
		primarySkill = skills[0]
	}

	rec := schema.Recommendation{
		Field:                field,
		FinalScore:           final,
		InterestScore:        interest,
		DemandScore:          demandScore,
		InterestContribution: interestContrib,
		MarketContribution:   marketContrib,
		Confidence:           confidence,
		ConfidenceReason:     confReason,
		Skills:               skills,
		Programs:             programs,
		Eligibility:          eligibility,
		DeptStatus:           deptStatus,
		Rationale:            GenerateRationale(deptStatus, field, interest, jobCount, primarySkill, matched, skills),
		WhyBest:              WhyBest(req.Alpha, req.Beta, sig.MixedInterest, containsScore(sig.TopScores, interest), interest, demandScore, jobCount, field),
		MarketOutlook:        MarketOutlook(jobCount),
		JobCount:             jobCount,
		MixedInterest:        sig.MixedInterest,
		LowSignal:            sig.LowSignal,
		Baselines:            baselines,
	}

	if e.jobs != nil && req.SampleJobs > 0 {
		rec.SampleJobs = e.jobs.JobsFor(e.resolver.DemandKey(field), req.SampleJobs)
	}

	return rec
}

// aggregateEligibility evaluates every program attached to a field and folds
// the per-program verdicts into a department status using the precedence
// order Eligible > EligibleDiploma > Aspirational > NotEligible. When no
// degree program is fully eligible, the diploma rescue scans the requirements
// table for diploma entries sharing a keyword with the field label.
func (e *Engine) aggregateEligibility(field string, programs []string, transcript *schema.Transcript) (schema.DeptStatus, map[string]schema.EligibilityResult) {
	eligibility := make(map[string]schema.EligibilityResult)
	if transcript == nil {
		return schema.DeptUnknown, eligibility
	}

	hasEligible := false
	hasAspirational := false
	for _, program := range programs {
		result := e.eval.CheckProgram(program, transcript)
		eligibility[program] = result
		switch result.Status {
		case schema.Eligible:
			hasEligible = true
		case schema.Aspirational:
			hasAspirational = true
		}
	}

	var diplomaHits int
	if !hasEligible {
		diplomaHits = e.diplomaRescue(field, transcript, eligibility)
	}

	switch {
	case hasEligible:
		return schema.DeptEligible, eligibility
	case diplomaHits > 0:
		return schema.DeptEligibleDiploma, eligibility
	case hasAspirational:
		return schema.DeptAspirational, eligibility
	case len(programs) == 0:
		// Nothing to evaluate is a data gap, not a rejection.
		return schema.DeptUnknown, eligibility
	default:
		return schema.DeptNotEligible, eligibility
	}
}

// diplomaRescue evaluates diploma-level requirement entries whose name shares
// a keyword with the field label, recording any eligible ones. Returns the
// number of eligible diploma pathways found.
func (e *Engine) diplomaRescue(field string, transcript *schema.Transcript, eligibility map[string]schema.EligibilityResult) int {
	keywords := strings.Fields(strings.ToLower(field))
	hits := 0
	for _, req := range e.reqs.All() {
		if req.Level != schema.DiplomaLevel {
			continue
		}
		name := strings.ToLower(req.Name)
		matched := false
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		result := e.eval.checkRequirement(req, transcript)
		if result.Status == schema.Eligible {
			eligibility[req.Name] = schema.EligibilityResult{
				Status: schema.Eligible,
				Reason: "Qualify for Diploma Pathway: " + result.Reason,
			}
			hits++
		}
	}
	return hits
}

// baselines computes the single-signal comparison rankings shared by every
// record of a pass: interest-only top-5 and demand-only top-5. The hybrid
// ranking is injected after the final sort.
func (e *Engine) baselines(scores map[string]float64) schema.Baselines {
	return schema.Baselines{
		InterestOnly: rankFieldsByScore(scores, baselineSize),
		MarketOnly:   e.demand.TopFields(baselineSize),
	}
}

// jobCount resolves a field label through the demand aliases and returns its
// posting count. Absent rows degrade to zero.
func (e *Engine) jobCount(field string) int {
	if field == "" {
		return 0
	}
	return e.demand.Lookup(e.resolver.DemandKey(field))
}

// sortedFields returns the score map's keys in label order.
func sortedFields(scores map[string]float64) []string {
	fields := make([]string, 0, len(scores))
	for field := range scores {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// rankFieldsByScore returns up to n field labels by score descending, with
// label order breaking ties.
func rankFieldsByScore(scores map[string]float64, n int) []string {
	fields := sortedFields(scores)
	sort.SliceStable(fields, func(i, j int) bool {
		return scores[fields[i]] > scores[fields[j]]
	})
	if len(fields) > n {
		fields = fields[:n]
	}
	return fields
}

// containsScore reports whether v is one of the pass's top scores.
func containsScore(top []float64, v float64) bool {
	for _, s := range top {
		if s == v {
			return true
		}
	}
	return false
}
