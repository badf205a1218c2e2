// Package catalog keeps a registry of named meshes and answers
// cheapest-route queries against any of them. See doc.go for the full
// contract.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/verlaque/meshroute/mesh"
	"github.com/verlaque/meshroute/meshtext"
)

// Manifest is the on-disk catalog description: a list of mesh files to
// load. Relative paths resolve against the manifest's own directory.
//
//	meshes:
//	  - name: southeast
//	    path: meshes/southeast.mesh
//	    both_ways: false
type Manifest struct {
	Meshes []ManifestEntry `yaml:"meshes"`
}

// ManifestEntry names one mesh file.
type ManifestEntry struct {
	// Name overrides the file-derived mesh name when non-empty.
	Name string `yaml:"name"`

	// Path locates the mesh file. Required.
	Path string `yaml:"path"`

	// BothWays loads every segment in both directions.
	BothWays bool `yaml:"both_ways"`
}

// LoadManifest reads the YAML manifest at path and registers every mesh it
// names, replacing snapshots already present under the same names. The
// load is all-or-nothing: every file is parsed before the registry is
// touched, so a malformed entry leaves the catalog as it was. When two
// entries share a name the later one wins.
func (c *Catalog) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: manifest: %w", err)
	}

	var man Manifest
	if err = yaml.Unmarshal(data, &man); err != nil {
		return fmt.Errorf("catalog: manifest %s: %w", path, err)
	}

	// 1. Parse every mesh before touching the registry.
	dir := filepath.Dir(path)
	parsed := make([]*mesh.Mesh, 0, len(man.Meshes))
	for i, entry := range man.Meshes {
		m, err := loadEntry(dir, entry)
		if err != nil {
			return fmt.Errorf("catalog: manifest %s: entry %d: %w", path, i, err)
		}
		parsed = append(parsed, m)
	}

	// 2. Swap the whole batch in.
	for _, m := range parsed {
		if _, err = c.Replace(m); err != nil {
			return fmt.Errorf("catalog: manifest %s: %w", path, err)
		}
	}

	return nil
}

// loadEntry parses one manifest entry into a mesh.
func loadEntry(dir string, entry ManifestEntry) (*mesh.Mesh, error) {
	if entry.Path == "" {
		return nil, errors.New("path is required")
	}

	meshPath := entry.Path
	if !filepath.IsAbs(meshPath) {
		meshPath = filepath.Join(dir, meshPath)
	}

	var opts []meshtext.Option
	if entry.Name != "" {
		opts = append(opts, meshtext.WithMeshName(entry.Name))
	}
	if entry.BothWays {
		opts = append(opts, meshtext.WithBothWays())
	}

	m, err := meshtext.ParseFile(meshPath, opts...)
	if err != nil {
		return nil, err
	}
	if m.Name() == "" {
		return nil, errors.New("mesh name is empty; set name: in the manifest")
	}

	return m, nil
}
