package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// Evaluator checks transcripts against program admission requirements.
// It is a pure rule machine over the read-only requirements table: every
// outcome is one of the four EligibilityStatus values, and the status only
// ever worsens as gates fail (Eligible -> Aspirational -> NotEligible).
type Evaluator struct {
	reqs contract.RequirementsTable
}

// NewEvaluator returns an Evaluator over the given requirements table.
func NewEvaluator(reqs contract.RequirementsTable) *Evaluator {
	return &Evaluator{reqs: reqs}
}

// CheckProgram evaluates one program against a transcript.
//
// Unknown programs soft-fail to UnknownElig so a missing requirements row
// never blocks the rest of the pipeline. A mean-grade miss is terminal for
// that dimension but subject checks still run and append their reasons.
// A subject shortfall of exactly one grade point downgrades Eligible to
// Aspirational; any larger shortfall, or a shortfall after an earlier
// failure, lands on NotEligible.
func (e *Evaluator) CheckProgram(program string, transcript *schema.Transcript) schema.EligibilityResult {
	req, ok := e.reqs.Lookup(program)
	if !ok {
		return schema.EligibilityResult{
			Status: schema.UnknownElig,
			Reason: "No requirement data available for this program.",
		}
	}
	return e.checkRequirement(req, transcript)
}

// checkRequirement runs the mean-grade and per-subject gates for a resolved
// requirement entry.
func (e *Evaluator) checkRequirement(req schema.ProgramRequirement, transcript *schema.Transcript) schema.EligibilityResult {
	status := schema.Eligible
	var reasons []string

	// 1. Mean grade gate.
	meanPts := transcript.MeanGradePoints()
	minMeanPts := schema.GradePoints(req.MinMeanGrade)
	if meanPts < minMeanPts {
		status = schema.NotEligible
		reasons = append(reasons, fmt.Sprintf("Mean Grade %s is below required %s", transcript.MeanGrade, req.MinMeanGrade))
	}

	// 2. Subject gates, in sorted spec order so reasons are deterministic.
	specs := make([]string, 0, len(req.Subjects))
	for spec := range req.Subjects {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	for _, raw := range specs {
		spec := schema.SubjectSpec(raw)
		minGrade := req.Subjects[raw]
		minPts := schema.GradePoints(minGrade)
		pts := resolveSubjectPoints(spec, transcript)

		if pts >= minPts {
			continue
		}
		if status == schema.Eligible && pts == minPts-1 {
			status = schema.Aspirational
			reasons = append(reasons, fmt.Sprintf("Subject %s grade %s is slightly below %s", spec.Display(), schema.GradeSymbol(pts), minGrade))
		} else {
			status = schema.NotEligible
			reasons = append(reasons, fmt.Sprintf("Subject %s grade %s does not meet %s", spec.Display(), schema.GradeSymbol(pts), minGrade))
		}
	}

	if status == schema.Eligible {
		reasons = append(reasons, fmt.Sprintf("Meets all criteria for %s", req.Level))
	}
	if req.Note != "" {
		reasons = append(reasons, "Note: "+req.Note)
	}

	return schema.EligibilityResult{Status: status, Reason: strings.Join(reasons, " | ")}
}

// resolveSubjectPoints maps a subject spec to the transcript grade points that
// should satisfy it. Missing subjects and unknown grade symbols score zero.
func resolveSubjectPoints(spec schema.SubjectSpec, transcript *schema.Transcript) int {
	switch {
	case spec.IsOrGroup():
		// Satisfied by the best-scoring alternative.
		best := 0
		for _, alt := range spec.Alternatives() {
			if pts := transcript.SubjectGrade(alt); pts > best {
				best = pts
			}
		}
		return best

	case spec.TeachingSlot() > 0:
		// Positional heuristic: the requirement does not name the subject,
		// so stand in the student's N-th best elective by grade points.
		return nthBestSubjectPoints(transcript, spec.TeachingSlot())

	default:
		return transcript.SubjectGrade(string(spec))
	}
}

// nthBestSubjectPoints returns the n-th highest subject grade points (1-indexed),
// or zero when the transcript has fewer subjects.
func nthBestSubjectPoints(transcript *schema.Transcript, n int) int {
	pts := make([]int, 0, len(transcript.Subjects))
	for _, grade := range transcript.Subjects {
		pts = append(pts, schema.GradePoints(grade))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pts)))
	if n <= len(pts) {
		return pts[n-1]
	}
	return 0
}
