package refdata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
)

// Catalog maps career-field keys to their ranked skill lists and degree
// programs. Keys are catalog keys, not scorer labels; callers resolve
// aliases before lookup.
type Catalog struct {
	entries map[string]catalogEntry
}

type catalogEntry struct {
	Skills   []string `json:"skills"`
	Programs []string `json:"programs"`
}

var _ contract.Catalog = &Catalog{} // Compile-time check

// LoadCatalog reads a career map JSON keyed by field. An empty path loads
// the embedded default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	r, closer, err := openOrEmbedded(path, defaultCatalogFile)
	if err != nil {
		return nil, err
	}
	defer closer()
	return parseCatalog(r)
}

func parseCatalog(r io.Reader) (*Catalog, error) {
	var entries map[string]catalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode career map: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// SkillsFor returns the ranked skill list for a field, nil when absent.
func (c *Catalog) SkillsFor(field string) []string {
	return c.entries[field].Skills
}

// ProgramsFor returns the degree programs attached to a field, nil when
// absent.
func (c *Catalog) ProgramsFor(field string) []string {
	return c.entries[field].Programs
}
