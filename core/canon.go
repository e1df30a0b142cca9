package core

// Resolver centralizes canonical-name resolution for career-field labels.
// The scorer taxonomy, the catalog, and the demand table were assembled from
// different sources and disagree on naming (e.g. "Information Technology" vs
// "IT", "Law" vs "Legal & Compliance"); every component that needs a lookup
// goes through one resolver instead of keeping its own alias table.
type Resolver struct {
	catalogAliases map[string]string
	demandAliases  map[string]string
}

// NewResolver builds a resolver from explicit alias tables. The maps are
// copied so the resolver stays immutable after construction.
func NewResolver(catalogAliases, demandAliases map[string]string) *Resolver {
	r := &Resolver{
		catalogAliases: make(map[string]string, len(catalogAliases)),
		demandAliases:  make(map[string]string, len(demandAliases)),
	}
	for k, v := range catalogAliases {
		r.catalogAliases[k] = v
	}
	for k, v := range demandAliases {
		r.demandAliases[k] = v
	}
	return r
}

// DefaultResolver returns the resolver for the standard field taxonomy.
func DefaultResolver() *Resolver {
	return NewResolver(defaultCatalogAliases, defaultDemandAliases)
}

// CatalogKey maps a scorer field label to its catalog key.
func (r *Resolver) CatalogKey(field string) string {
	if key, ok := r.catalogAliases[field]; ok {
		return key
	}
	return field
}

// DemandKey maps a scorer field label to its demand-table key.
func (r *Resolver) DemandKey(field string) string {
	if key, ok := r.demandAliases[field]; ok {
		return key
	}
	return field
}

// defaultCatalogAliases maps scorer taxonomy labels to catalog keys.
var defaultCatalogAliases = map[string]string{
	"Information Technology":         "IT",
	"Healthcare & Medical":           "Health Sciences",
	"Finance & Accounting":           "Business",
	"Marketing & Sales":              "Business",
	"Human Resources":                "Business",
	"Administration & Support":       "Business",
	"Arts & Media":                   "Arts & Humanities",
	"Agriculture & Environmental":    "Agriculture",
	"Architecture & Construction":    "Architecture & Built Environment",
	"Social Sciences & Community":    "Arts & Humanities",
	"Security & Protective Services": "Arts & Humanities",
	"Data Science & Analytics":       "IT",
	"Project Management":             "Business",
	"Renewable Energy & Environment": "Environmental Studies",
	"Real Estate & Property":         "Business",
	"Aviation & Logistics":           "Engineering",
}

// defaultDemandAliases maps scorer taxonomy labels to demand-table keys.
var defaultDemandAliases = map[string]string{
	"Law": "Legal & Compliance",
}
