// Package refdata loads the read-only reference tables that the
// recommendation engine consults: job-market demand counts, the career
// catalog (skills and programs per field), program admission requirements,
// scraped job postings and student transcripts.
//
// Demand, catalog and requirements ship with embedded defaults so the binary
// works out of the box; file paths override them. Jobs and transcripts have
// no embedded defaults and degrade to empty when absent.
package refdata

import "embed"

//go:embed data
var defaultData embed.FS

const (
	defaultDemandFile       = "data/job_demand.csv"
	defaultCatalogFile      = "data/career_map.json"
	defaultRequirementsFile = "data/requirements.json"
)
