package schema

// Custom string types for type safety.
type (
	// EligibilityStatus represents the per-program eligibility verdict.
	EligibilityStatus string

	// DeptStatus represents the department-level aggregate verdict.
	DeptStatus string

	// Confidence represents how much the interest signal can be trusted.
	Confidence string

	// ProgramLevel represents the academic level of a program.
	ProgramLevel string

	// WeightPreset represents a named alpha/beta weighting policy.
	WeightPreset string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run persistence.
	DatabaseBackend string
)

// All eligibility statuses supported.
const (
	Eligible     EligibilityStatus = "ELIGIBLE"
	Aspirational EligibilityStatus = "ASPIRATIONAL"
	NotEligible  EligibilityStatus = "NOT_ELIGIBLE"
	UnknownElig  EligibilityStatus = "UNKNOWN"
)

// All department statuses supported. The aggregate is a priority order,
// not a maximum: Eligible > EligibleDiploma > Aspirational > NotEligible,
// with Unknown reserved for fields with nothing to evaluate.
const (
	DeptEligible        DeptStatus = "ELIGIBLE"
	DeptEligibleDiploma DeptStatus = "ELIGIBLE_DIPLOMA"
	DeptAspirational    DeptStatus = "ASPIRATIONAL"
	DeptNotEligible     DeptStatus = "NOT_ELIGIBLE"
	DeptUnknown         DeptStatus = "UNKNOWN"
)

// All confidence levels supported.
const (
	HighConfidence   Confidence = "High"
	MediumConfidence Confidence = "Medium"
	LowConfidence    Confidence = "Low"
)

// All program levels supported.
const (
	DegreeLevel  ProgramLevel = "Degree"
	DiplomaLevel ProgramLevel = "Diploma"
)

// All weight presets supported.
const (
	BalancedPreset       WeightPreset = "balanced" // default
	PassionFirstPreset   WeightPreset = "passion-first"
	MarketPriorityPreset WeightPreset = "market-priority"
	CustomPreset         WeightPreset = "custom"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllDeptStatuses returns department statuses in precedence order, best first.
var AllDeptStatuses = []DeptStatus{
	DeptEligible, DeptEligibleDiploma, DeptAspirational, DeptNotEligible, DeptUnknown,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidWeightPresets lists all valid weight presets.
var ValidWeightPresets = map[WeightPreset]struct{}{
	BalancedPreset:       {},
	PassionFirstPreset:   {},
	MarketPriorityPreset: {},
	CustomPreset:         {},
}

// ValidRunBackends lists all valid run store backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// BlendWeights pairs the interest weight (alpha) with the market weight (beta).
// Alpha and beta are expected to sum to 1.
type BlendWeights struct {
	Alpha float64
	Beta  float64
}

// GetPresetWeights returns the alpha/beta pair for a named weighting policy.
func GetPresetWeights(preset WeightPreset) BlendWeights {
	switch preset {
	case PassionFirstPreset:
		return BlendWeights{Alpha: 0.90, Beta: 0.10}
	case MarketPriorityPreset:
		return BlendWeights{Alpha: 0.30, Beta: 0.70}
	default: // BalancedPreset
		return BlendWeights{Alpha: 0.70, Beta: 0.30}
	}
}

// betterDept maps each department status to its precedence rank, best first.
var deptPrecedence = map[DeptStatus]int{
	DeptEligible:        0,
	DeptEligibleDiploma: 1,
	DeptAspirational:    2,
	DeptNotEligible:     3,
	DeptUnknown:         4,
}

// DeptStatusRank returns the precedence rank of a department status.
// Lower is better. Unrecognized statuses rank last.
func DeptStatusRank(s DeptStatus) int {
	if r, ok := deptPrecedence[s]; ok {
		return r
	}
	return len(deptPrecedence)
}
