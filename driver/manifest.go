// Package driver orchestrates tokenizing and parsing whole source
// trees: project manifests, parallel per-file parsing, and a disk
// cache of parse summaries keyed by content hash.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project manifest file searched for by FindManifest.
const ManifestName = "vb6project.toml"

// Manifest is the decoded vb6project.toml.
type Manifest struct {
	Project struct {
		Name string `toml:"name"`
		// Sources lists source directories relative to the project
		// root; empty means the root itself.
		Sources []string `toml:"sources"`
		// Extensions overrides the default .bas/.cls/.frm/.ctl/.vbs set.
		Extensions []string `toml:"extensions"`
		// MaxErrors caps recorded failures per file; 0 keeps the default.
		MaxErrors int `toml:"max_errors"`
	} `toml:"project"`
}

// DefaultExtensions are the VB6 source file extensions scanned when the
// manifest does not override them.
var DefaultExtensions = []string{".bas", ".cls", ".frm", ".ctl", ".vbs"}

// FindManifest walks up from startDir to locate vb6project.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &m, nil
}

// SourceDirs resolves the manifest's source directories against its
// own location.
func (m *Manifest) SourceDirs(manifestPath string) []string {
	root := filepath.Dir(manifestPath)
	if len(m.Project.Sources) == 0 {
		return []string{root}
	}
	dirs := make([]string, 0, len(m.Project.Sources))
	for _, s := range m.Project.Sources {
		if filepath.IsAbs(s) {
			dirs = append(dirs, s)
			continue
		}
		dirs = append(dirs, filepath.Join(root, s))
	}
	return dirs
}

// Extensions returns the effective source extension set.
func (m *Manifest) Extensions() []string {
	if len(m.Project.Extensions) == 0 {
		return DefaultExtensions
	}
	return m.Project.Extensions
}
