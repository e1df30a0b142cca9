package refdata

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// Requirements is the program admission requirements table. Lookup is a
// case-insensitive substring match in either direction, matching how program
// labels in the catalog relate to requirement entry names ("Bachelor of
// Science in Computer Science" vs "Computer Science").
type Requirements struct {
	entries []schema.ProgramRequirement
}

var _ contract.RequirementsTable = &Requirements{} // Compile-time check

// LoadRequirements reads a requirements JSON keyed by program name. An empty
// path loads the embedded default table.
func LoadRequirements(path string) (*Requirements, error) {
	r, closer, err := openOrEmbedded(path, defaultRequirementsFile)
	if err != nil {
		return nil, err
	}
	defer closer()
	return parseRequirements(r)
}

func parseRequirements(r io.Reader) (*Requirements, error) {
	var raw map[string]schema.ProgramRequirement
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode requirements: %w", err)
	}

	entries := make([]schema.ProgramRequirement, 0, len(raw))
	for name, req := range raw {
		req.Name = name
		if req.Level == "" {
			req.Level = schema.DegreeLevel
		}
		entries = append(entries, req)
	}
	// Stable entry order makes substring Lookup deterministic when multiple
	// names match.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return &Requirements{entries: entries}, nil
}

// Lookup finds the requirement entry for a program label.
func (rq *Requirements) Lookup(program string) (schema.ProgramRequirement, bool) {
	needle := strings.ToLower(program)
	for _, req := range rq.entries {
		name := strings.ToLower(req.Name)
		if strings.Contains(needle, name) || strings.Contains(name, needle) {
			return req, true
		}
	}
	return schema.ProgramRequirement{}, false
}

// All returns every requirement entry in name order.
func (rq *Requirements) All() []schema.ProgramRequirement {
	return rq.entries
}
