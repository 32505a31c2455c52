package pkg

// ScopedRegistry is one entry of the manifest's "scopedRegistries" array: a
// named package source restricted to a set of package-name scopes.
type ScopedRegistry struct {
	Name   string   `json:"name"`
	URL    string   `json:"url"`
	Scopes []string `json:"scopes"`
}

// EnsureRegistry returns registries with an entry for url present. An
// existing entry with the same url wins as-is, even if its name or scopes
// differ; otherwise a new entry is appended, keeping prior order.
func EnsureRegistry(registries []ScopedRegistry, name, url string, scopes []string) []ScopedRegistry {
	for _, r := range registries {
		if r.URL == url {
			return registries
		}
	}
	if scopes == nil {
		scopes = []string{}
	}
	return append(registries, ScopedRegistry{Name: name, URL: url, Scopes: scopes})
}
