package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// LoadTranscript reads a student transcript JSON. An empty path returns nil,
// which downstream treats as "no academic data" rather than an error.
func LoadTranscript(path string) (*schema.Transcript, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var t schema.Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode transcript %s: %w", path, err)
	}
	if t.MeanGrade == "" {
		return nil, fmt.Errorf("transcript %s has no mean_grade", path)
	}
	return &t, nil
}
