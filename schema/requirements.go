package schema

import (
	"strings"
)

// Subject spec markers. A requirement subject key is either a plain subject
// name, an OR-group joined with "_or_", or a generic teaching-subject slot
// resolved positionally against the student's best electives.
const (
	orSeparator        = "_or_"
	teachingSubjectTag = "Teaching_Subject"
)

// ProgramRequirement describes the admission rules for one program.
// Subjects maps a subject spec to the minimum grade symbol required for it.
type ProgramRequirement struct {
	Name         string            `json:"-"`
	Level        ProgramLevel      `json:"level"`
	MinMeanGrade string            `json:"min_mean_grade"`
	Subjects     map[string]string `json:"required_subjects"`
	Note         string            `json:"note,omitempty"`
}

// SubjectSpec wraps a requirement subject key with its interpretation.
type SubjectSpec string

// IsOrGroup reports whether the spec is an OR-group such as
// "English_or_Kiswahili", satisfied by the better of its alternatives.
func (s SubjectSpec) IsOrGroup() bool {
	return strings.Contains(string(s), orSeparator)
}

// Alternatives returns the subject names of an OR-group.
func (s SubjectSpec) Alternatives() []string {
	return strings.Split(string(s), orSeparator)
}

// TeachingSlot returns the 1-indexed elective slot of a generic
// teaching-subject spec, or 0 when the spec is not one. The slot is a stand-in
// heuristic: requirements of this shape do not name the subject, so the
// student's N-th best elective by grade points is used instead. This is an
// approximation of real curriculum rules, not a validation of them.
func (s SubjectSpec) TeachingSlot() int {
	if !strings.Contains(string(s), teachingSubjectTag) {
		return 0
	}
	if strings.Contains(string(s), "2") {
		return 2
	}
	return 1
}

// Display returns a human-readable form of the spec for reason strings.
func (s SubjectSpec) Display() string {
	return strings.ReplaceAll(string(s), "_", " ")
}
