package uvbump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the project manifest uvbump operates on.
const ManifestName = "pyproject.toml"

// ManifestStore reads and writes a structured project manifest. The
// orchestrator only depends on this interface so it can be tested against
// an in-memory implementation.
type ManifestStore interface {
	Load(path string) (map[string]any, error)
	Save(path string, data map[string]any) error
}

// NewTOMLStore returns a ManifestStore backed by TOML files on disk.
func NewTOMLStore() ManifestStore { return tomlStore{} }

type tomlStore struct{}

func (tomlStore) Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrManifestNotFound, filepath.Dir(path))
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Save writes the manifest atomically: the document is encoded to a
// temporary file in the same directory and renamed over the target, so a
// failed write leaves the original manifest untouched.
func (tomlStore) Save(path string, data map[string]any) error {
	out, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// projectVersion extracts the project.version field from a loaded manifest.
func projectVersion(data map[string]any) (string, error) {
	project, ok := data["project"].(map[string]any)
	if !ok {
		return "", ErrVersionFieldMissing
	}
	version, ok := project["version"].(string)
	if !ok {
		return "", ErrVersionFieldMissing
	}
	return version, nil
}

// setProjectVersion replaces the project.version field. The project table
// is known to exist: projectVersion ran first.
func setProjectVersion(data map[string]any, version string) {
	if project, ok := data["project"].(map[string]any); ok {
		project["version"] = version
	}
}
