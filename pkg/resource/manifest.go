package resource

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sjinzh/slint/pkg/errors"
)

// Manifest maps logical resource names to file paths. Compiled
// components reference resources by name; the manifest resolves them to
// concrete files at startup.
type Manifest struct {
	// Resources maps a logical name to a path, relative to the
	// manifest's directory unless absolute.
	Resources map[string]string `yaml:"resources"`

	root string
}

// LoadManifest reads a YAML resource manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("resource.LoadManifest", errors.KindResource, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.New("resource.LoadManifest", errors.KindResource, err)
	}
	m.root = filepath.Dir(path)
	return &m, nil
}

// Resolve returns the resource registered under name, or None if the
// name is unknown.
func (m *Manifest) Resolve(name string) Resource {
	if m == nil {
		return None{}
	}
	path, ok := m.Resources[strings.TrimSpace(name)]
	if !ok || path == "" {
		return None{}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.root, path)
	}
	return AbsoluteFilePath{Path: path}
}

// Names returns the logical names registered in the manifest.
func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Resources))
	for name := range m.Resources {
		names = append(names, name)
	}
	return names
}
