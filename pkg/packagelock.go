package pkg

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// PackagesLock models Packages/packages-lock.json, the editor's resolver
// output. The tool never resolves packages itself; it only drops a stale
// entry after a version bump so the editor re-resolves on next load.
type PackagesLock struct {
	Dependencies map[string]LockedPackage `json:"dependencies"`
}

type LockedPackage struct {
	Version      string            `json:"version"`
	Depth        int               `json:"depth"`
	Source       string            `json:"source"`
	Dependencies map[string]string `json:"dependencies"`
	URL          string            `json:"url,omitempty"`
}

func LoadPackagesLock(path string) (*PackagesLock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lock PackagesLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

func SavePackagesLock(path string, lock *PackagesLock) error {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// DropLockEntry removes packageName from the project's packages-lock.json.
// It reports whether an entry was removed; a missing lock file is a no-op.
func DropLockEntry(projectRoot, packageName string) (bool, error) {
	lockPath := filepath.Join(projectRoot, "Packages", "packages-lock.json")
	lock, err := LoadPackagesLock(lockPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if _, ok := lock.Dependencies[packageName]; !ok {
		return false, nil
	}
	delete(lock.Dependencies, packageName)
	if err := SavePackagesLock(lockPath, lock); err != nil {
		return false, err
	}
	return true, nil
}
