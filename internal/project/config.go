// Package project resolves project-level configuration for tooling.
//
// A project is a Go module with an optional slint.yaml next to its
// go.mod. The file names the application and points at the resource
// manifest; everything it omits is derived from the module path.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/sjinzh/slint/pkg/errors"
)

// Config represents the optional slint.yaml configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Resources ResourcesConfig `yaml:"resources"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// ResourcesConfig points at the project's resource manifest.
type ResourcesConfig struct {
	Manifest string `yaml:"manifest,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	AppID        string
	ManifestPath string
}

// LoadOptional reads slint.yaml in dir if present. A missing file is
// not an error; it resolves to an empty configuration.
func LoadOptional(dir string) (*Config, error) {
	const op = "project.LoadOptional"

	data, err := os.ReadFile(filepath.Join(dir, "slint.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.New(op, errors.KindConfig, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}
	return &cfg, nil
}

// Resolve loads slint.yaml (if present) and fills in defaults from the
// module's go.mod.
func Resolve(dir string) (*Resolved, error) {
	const op = "project.Resolve"

	modulePath, err := readModulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	manifest := strings.TrimSpace(cfg.Resources.Manifest)
	if manifest != "" && !filepath.IsAbs(manifest) {
		manifest = filepath.Join(dir, manifest)
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		AppID:        appID,
		ManifestPath: manifest,
	}, nil
}

// FindProjectRoot walks up from the current directory to the nearest
// directory containing a go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf("project.FindProjectRoot", errors.KindConfig,
				"not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func readModulePath(dir string) (string, error) {
	const op = "project.readModulePath"

	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", errors.New(op, errors.KindConfig, err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", errors.Newf(op, errors.KindConfig, "could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "slint_app"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return "com.example." + sanitizeSegment(appName)
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}

	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment)
	}
	return strings.Join(segments, ".")
}

func sanitizeSegment(segment string) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		return "app"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
