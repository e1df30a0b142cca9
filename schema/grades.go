package schema

// gradePoints is the fixed 13-symbol ordinal scale used by both transcripts
// and admission requirements. Direct point comparison between the two is the
// whole basis of eligibility checking.
var gradePoints = map[string]int{
	"A":   12,
	"A-":  11,
	"B+":  10,
	"B":   9,
	"B-":  8,
	"C+":  7,
	"C":   6,
	"C-":  5,
	"D+":  4,
	"D":   3,
	"D-":  2,
	"E":   1,
	"N/A": 0,
}

// gradeSymbols is the reverse lookup, points to symbol.
var gradeSymbols = func() map[int]string {
	m := make(map[int]string, len(gradePoints))
	for sym, pts := range gradePoints {
		m[pts] = sym
	}
	return m
}()

// GradePoints returns the point value of a grade symbol.
// Unknown symbols map to 0, the same as N/A; malformed transcript data
// degrades rather than failing.
func GradePoints(symbol string) int {
	return gradePoints[symbol]
}

// GradeSymbol returns the grade symbol for a point value, or "N/A" when the
// value is off the scale.
func GradeSymbol(points int) string {
	if sym, ok := gradeSymbols[points]; ok {
		return sym
	}
	return "N/A"
}

// MaxGradePoints is the top of the grade scale.
const MaxGradePoints = 12

// SubjectGrade returns the transcript's grade points for a subject.
// Missing subjects score 0.
func (t *Transcript) SubjectGrade(subject string) int {
	return GradePoints(t.Subjects[subject])
}

// MeanGradePoints returns the transcript's aggregate grade points.
func (t *Transcript) MeanGradePoints() int {
	return GradePoints(t.MeanGrade)
}
