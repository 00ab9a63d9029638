package asset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-dandelion/internal/config"
)

// Manifest declares the assets known to the application and where each
// locator finds them. It is read from a JSON or YAML file:
//
//	context_path: /app
//	jar_root: resources
//	webjars:
//	  - artifact: jquery
//	    version: 1.11.0
//	    files: [jquery.js]
//	assets:
//	  - name: jquery
//	    locations:
//	      webjar: jquery.js
//	      cdn: //code.jquery.com/jquery-1.11.0.js
type Manifest struct {
	ContextPath string          `json:"context_path" yaml:"context_path"`
	JarRoot     string          `json:"jar_root" yaml:"jar_root"`
	Webjars     []Webjar        `json:"webjars" yaml:"webjars"`
	Assets      []ManifestAsset `json:"assets" yaml:"assets"`

	// dir is the directory of the manifest file; a relative JarRoot is
	// resolved against it.
	dir string
}

// ManifestAsset is one declared asset.
type ManifestAsset struct {
	Name      string            `json:"name" yaml:"name"`
	Locations map[string]string `json:"locations" yaml:"locations"`
}

// LoadManifest reads the manifest at path. An empty path yields an empty
// manifest.
func LoadManifest(path string) (*Manifest, error) {
	m := &Manifest{}
	if path == "" {
		return m, nil
	}

	if err := config.DecodeFile(path, m); err != nil {
		return nil, fmt.Errorf("error loading asset manifest: %w", err)
	}
	m.dir = filepath.Dir(path)

	seen := make(map[string]struct{}, len(m.Assets))
	for i, a := range m.Assets {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: asset #%d has no name", ErrInvalidManifest, i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: asset %q declared twice", ErrInvalidManifest, name)
		}
		seen[name] = struct{}{}
		m.Assets[i].Name = name
	}

	return m, nil
}

// Registry returns a registry holding every declared asset.
func (m *Manifest) Registry() *Registry {
	units := make([]StorageUnit, 0, len(m.Assets))
	for _, a := range m.Assets {
		units = append(units, NewStorageUnit(a.Name, a.Locations))
	}
	return NewRegistry(units...)
}

// Locators returns the webapp, webjar, jar and cdn locators configured by
// the manifest.
func (m *Manifest) Locators() []Locator {
	return []Locator{
		WebappLocator{ContextPath: m.ContextPath},
		NewWebjarLocator(m.ContextPath, m.Webjars...),
		NewJarLocator(m.ContextPath, m.jarFS()),
		CdnLocator{},
	}
}

// jarFS returns the packaged resources root: JarRoot, relative to the
// manifest directory, or the manifest directory itself. Without a manifest
// file there is no root.
func (m *Manifest) jarFS() fs.FS {
	root := m.JarRoot
	switch {
	case root == "" && m.dir == "":
		return nil
	case root == "":
		root = m.dir
	case !filepath.IsAbs(root):
		root = filepath.Join(m.dir, root)
	}
	return os.DirFS(root)
}
