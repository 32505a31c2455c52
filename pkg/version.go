package pkg

import (
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionSatisfied reports whether manifestText declares packageName at
// minVersion or newer. The dependency line is found by substring match on the
// package name, so a line merely containing the name elsewhere also matches.
// A pre-release version (anything after a "-") is compared with its suffix
// stripped and must be strictly greater than minVersion, so a pre-release of
// the minimum itself does not satisfy it. Any malformed input reads as not
// satisfied.
func VersionSatisfied(manifestText, packageName, minVersion string) bool {
	min, err := semver.NewVersion(minVersion)
	if err != nil {
		return false
	}

	var depLine string
	found := false
	for _, line := range strings.Split(manifestText, "\n") {
		if strings.Contains(line, packageName) {
			depLine = line
			found = true
			break
		}
	}
	if !found {
		return false
	}

	parts := strings.Split(depLine, ":")
	if len(parts) != 2 {
		return false
	}
	raw := strings.Trim(parts[1], " \t\",")

	prerelease := false
	if i := strings.Index(raw, "-"); i != -1 {
		raw = raw[:i]
		prerelease = true
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		return false
	}
	if prerelease {
		return v.GreaterThan(min)
	}
	return v.Compare(min) >= 0
}

// CheckDependencySatisfied locates the project manifest and runs
// VersionSatisfied against it. A missing or unreadable manifest is false.
func CheckDependencySatisfied(projectRoot, packageName, minVersion string) bool {
	manifestPath, ok := LocateManifest(projectRoot)
	if !ok {
		return false
	}
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return false
	}
	return VersionSatisfied(string(data), packageName, minVersion)
}
