package pkg_test

import (
	"os"
	"path/filepath"
	"testing"

	"goupm/pkg"
)

func writeLock(t *testing.T, root string, lock *pkg.PackagesLock) string {
	t.Helper()
	dir := filepath.Join(root, "Packages")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "packages-lock.json")
	if err := pkg.SavePackagesLock(path, lock); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPackagesLockReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages-lock.json")
	original := &pkg.PackagesLock{
		Dependencies: map[string]pkg.LockedPackage{
			"com.example.tools": {
				Version: "0.5.0",
				Depth:   0,
				Source:  "registry",
				URL:     "https://registry.example.com",
			},
		},
	}

	if err := pkg.SavePackagesLock(path, original); err != nil {
		t.Fatalf("Failed to save packages-lock.json: %v", err)
	}
	loaded, err := pkg.LoadPackagesLock(path)
	if err != nil {
		t.Fatalf("Failed to load packages-lock.json: %v", err)
	}

	entry := loaded.Dependencies["com.example.tools"]
	if entry.Version != "0.5.0" || entry.Source != "registry" {
		t.Errorf("Lock entry not round-tripped: %+v", entry)
	}
}

func TestDropLockEntry(t *testing.T) {
	root := t.TempDir()
	path := writeLock(t, root, &pkg.PackagesLock{
		Dependencies: map[string]pkg.LockedPackage{
			"com.example.tools": {Version: "0.5.0", Source: "registry"},
			"com.unity.ugui":    {Version: "1.0.0", Source: "builtin"},
		},
	})

	removed, err := pkg.DropLockEntry(root, "com.example.tools")
	if err != nil {
		t.Fatalf("DropLockEntry failed: %v", err)
	}
	if !removed {
		t.Errorf("Existing entry not reported as removed")
	}

	lock, err := pkg.LoadPackagesLock(path)
	if err != nil {
		t.Fatalf("Failed to reload lock: %v", err)
	}
	if _, ok := lock.Dependencies["com.example.tools"]; ok {
		t.Errorf("Entry still present after drop")
	}
	if _, ok := lock.Dependencies["com.unity.ugui"]; !ok {
		t.Errorf("Unrelated entry removed")
	}
}

func TestDropLockEntryAbsent(t *testing.T) {
	root := t.TempDir()
	writeLock(t, root, &pkg.PackagesLock{Dependencies: map[string]pkg.LockedPackage{}})

	removed, err := pkg.DropLockEntry(root, "com.example.tools")
	if err != nil {
		t.Fatalf("DropLockEntry failed: %v", err)
	}
	if removed {
		t.Errorf("Absent entry reported as removed")
	}
}

func TestDropLockEntryNoLockFile(t *testing.T) {
	removed, err := pkg.DropLockEntry(t.TempDir(), "com.example.tools")
	if err != nil {
		t.Fatalf("Missing lock file should be a no-op, got error: %v", err)
	}
	if removed {
		t.Errorf("Missing lock file reported as removed entry")
	}
}
