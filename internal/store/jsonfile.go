package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"studyforge/internal/plan"
)

// FileAdapter persists the collection as a single JSON document.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates an adapter writing to the given file path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load reads the collection. A missing file or malformed document yields an
// empty collection rather than an error.
func (a *FileAdapter) Load() ([]plan.Plan, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", a.path, err)
	}

	var plans []plan.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		// Malformed state is treated as absence of data.
		return nil, nil
	}
	return plans, nil
}

// Save atomically writes the whole collection using a temp file + rename.
func (a *FileAdapter) Save(plans []plan.Plan) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if plans == nil {
		plans = []plan.Plan{}
	}
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plans: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", a.path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, a.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
