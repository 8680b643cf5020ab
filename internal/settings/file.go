package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadTree loads a settings document from disk. A missing file is the
// normal state for a fresh project, so it reports ok=false with no
// error. A file that exists but does not hold a JSON object is a
// ShapeError.
func ReadTree(path string) (Tree, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	tree, err := AsTree(raw, path)
	if err != nil {
		return nil, false, err
	}
	return tree, true, nil
}

// WriteTree persists a settings document with the 2-space indentation
// the agent host's own writes use.
func WriteTree(path string, tree Tree) error {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0644)
}
