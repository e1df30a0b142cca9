package core

import (
	_ "embed"
	"encoding/json"
)

//go:embed fallback_skills.json
var fallbackSkillsJSON []byte

// fallbackSkills is the static per-category skill table used when a catalog
// entry is sparse. Loaded once at process start from the embedded JSON so the
// table can be swapped without touching code.
var fallbackSkills = func() struct {
	Generic    []string            `json:"generic"`
	Categories map[string][]string `json:"categories"`
} {
	var fs struct {
		Generic    []string            `json:"generic"`
		Categories map[string][]string `json:"categories"`
	}
	if err := json.Unmarshal(fallbackSkillsJSON, &fs); err != nil {
		panic("core: invalid embedded fallback skills: " + err.Error())
	}
	return fs
}()

// minCatalogSkills is the point at which a catalog entry counts as sparse.
const minCatalogSkills = 2

// resolveSkills returns the catalog skills for a category, substituting the
// static fallback list when the entry is sparse.
func resolveSkills(catalogKey string, skills []string) []string {
	if len(skills) >= minCatalogSkills {
		return skills
	}
	if fb, ok := fallbackSkills.Categories[catalogKey]; ok {
		return fb
	}
	return fallbackSkills.Generic
}
