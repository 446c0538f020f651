package domain

import "strings"

// Model is a registered model as reported by the model registry.
type Model struct {
	Name           string
	Tags           map[string]string
	LatestVersions []ModelVersion
}

// ModelVersion is one registered version of a model.
type ModelVersion struct {
	Version string
	Stage   string
	Source  string
}

// Version returns the latest version with the given identifier.
func (m *Model) Version(version string) (*ModelVersion, bool) {
	for i := range m.LatestVersions {
		if m.LatestVersions[i].Version == version {
			return &m.LatestVersions[i], true
		}
	}
	return nil, false
}

// HasAnyTag reports whether any of the given tag keys is set on the model.
// An empty allow-list matches every model.
func (m *Model) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if _, ok := m.Tags[t]; ok {
			return true
		}
	}
	return false
}

// BuildResult is the outcome of a build-and-push run.
type BuildResult struct {
	Image  string
	Output string
}

// EnvManagerBaseImage selects the cached-base-image build path. Any other
// value is handed to the artifact tool's native container builder.
const EnvManagerBaseImage = "baseimage"

// RepoName converts a model name into its container repository form.
func RepoName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}
