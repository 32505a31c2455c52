package pkg

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Patch describes one dependency plus the scoped registry that serves it.
type Patch struct {
	PackageName  string
	Version      string
	RegistryName string
	RegistryURL  string
	Scopes       []string
}

// EnsureDependencyAndRegistry patches Packages/manifest.json under
// projectRoot so that it contains a dependency line for p.PackageName at
// p.Version and a scoped-registry entry for p.RegistryURL. The manifest is
// edited as text lines so hand-made formatting outside the touched parts
// survives; only the scopedRegistries array is decoded structurally. A
// missing manifest is a reported no-op. The file is rewritten in one
// truncate-and-write once the full output is assembled.
func EnsureDependencyAndRegistry(projectRoot string, p Patch) error {
	manifestPath, ok := LocateManifest(projectRoot)
	if !ok {
		fmt.Println("Packages/manifest.json not found under", projectRoot, "- skipping")
		return nil
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return err
	}

	var doc struct {
		ScopedRegistries []ScopedRegistry `json:"scopedRegistries"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", manifestPath, err)
	}
	registries := EnsureRegistry(doc.ScopedRegistries, p.RegistryName, p.RegistryURL, p.Scopes)

	lines := strings.Split(string(data), "\n")

	// One scan: the dependencies opening line, the existing scopedRegistries
	// block range, and any line already naming the package.
	depsOpen, regStart, regEnd, depLine := -1, -1, -1, -1
	for i, line := range lines {
		if depsOpen == -1 && strings.Contains(line, `"dependencies"`) {
			depsOpen = i
		}
		if regStart == -1 && strings.Contains(line, `"scopedRegistries"`) {
			regStart = i
		}
		if regStart != -1 && regEnd == -1 && i >= regStart && strings.TrimSpace(line) == "]," {
			regEnd = i
		}
		if depLine == -1 && strings.Contains(line, p.PackageName) {
			depLine = i
		}
	}
	if regStart != -1 && regEnd == -1 {
		return fmt.Errorf("unterminated scopedRegistries block in %s", manifestPath)
	}

	entry := fmt.Sprintf("    %q: %q,", p.PackageName, p.Version)
	if depLine != -1 {
		// Keep the old line's comma shape so a last entry stays a last entry.
		if !strings.HasSuffix(strings.TrimRight(lines[depLine], " \t"), ",") {
			entry = strings.TrimSuffix(entry, ",")
		}
		lines[depLine] = entry
	} else {
		if depsOpen == -1 {
			return fmt.Errorf("no dependencies block in %s", manifestPath)
		}
		open := strings.Index(lines[depsOpen], "{")
		end := -1
		if open != -1 {
			end = strings.Index(lines[depsOpen][open+1:], "}")
		}
		if end != -1 {
			// The block opens and closes on one line, as written for an
			// empty manifest. Split it so the entry lands inside the braces.
			line := lines[depsOpen]
			if strings.TrimSpace(line[open+1:open+1+end]) != "" {
				return fmt.Errorf("compact dependencies block in %s", manifestPath)
			}
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[depsOpen] = line[:open+1]
			entry = strings.TrimSuffix(entry, ",")
			lines = slices.Insert(lines, depsOpen+1, entry, indent+line[open+1+end:])
			if regStart > depsOpen {
				regStart += 2
				regEnd += 2
			}
		} else {
			at := depsOpen + 1
			lines = slices.Insert(lines, at, entry)
			if regStart >= at {
				regStart++
				regEnd++
			}
		}
	}

	block, err := serializeRegistries(registries)
	if err != nil {
		return err
	}

	// Reassemble: drop the old registries block, write the fresh one right
	// before the first surviving line after the opening brace.
	out := make([]string, 0, len(lines)+1)
	wrote := false
	for i, line := range lines {
		if regStart != -1 && i >= regStart && i <= regEnd {
			continue
		}
		if i > 0 && !wrote {
			out = append(out, block)
			wrote = true
		}
		out = append(out, line)
	}

	return os.WriteFile(manifestPath, []byte(strings.Join(out, "\n")), 0644)
}

// serializeRegistries pretty-prints the scopedRegistries array as manifest
// lines: the wrapper object's braces are stripped and a trailing comma added
// so the block drops in before the rest of the document.
func serializeRegistries(registries []ScopedRegistry) (string, error) {
	wrapper := struct {
		ScopedRegistries []ScopedRegistry `json:"scopedRegistries"`
	}{registries}

	data, err := json.MarshalIndent(wrapper, "", "  ")
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return strings.Trim(s, "\n") + ",", nil
}
