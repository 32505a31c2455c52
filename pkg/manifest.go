package pkg

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Manifest holds the structured slice of Packages/manifest.json that this
// tool edits. Everything else in the file is handled as opaque text lines.
type Manifest struct {
	ScopedRegistries []ScopedRegistry  `json:"scopedRegistries,omitempty"`
	Dependencies     map[string]string `json:"dependencies"`
}

// LocateManifest returns the absolute path of Packages/manifest.json under
// projectRoot, or ok == false when the file does not exist.
func LocateManifest(projectRoot string) (string, bool) {
	path := filepath.Join(projectRoot, "Packages", "manifest.json")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, true
	}
	return abs, true
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func SaveManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
