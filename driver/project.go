package driver

import (
	"context"

	"vb6syntax/source"
)

// defaultMaxErrors caps per-file failure records when the manifest does
// not say otherwise.
const defaultMaxErrors = 256

// ProjectResult is the aggregate outcome of parsing one project.
type ProjectResult struct {
	Manifest *Manifest
	// FileSets holds one set per source directory, in manifest order.
	FileSets []*source.FileSet
	Files    []ParseResult
}

// HasErrors reports whether any file recorded an error.
func (r *ProjectResult) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag != nil && r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// ParseProject loads a manifest and parses every source directory it
// names, honoring its extension set and failure cap.
func ParseProject(ctx context.Context, manifestPath string, jobs int) (*ProjectResult, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	maxErrors := m.Project.MaxErrors
	if maxErrors <= 0 {
		maxErrors = defaultMaxErrors
	}
	out := &ProjectResult{Manifest: m}
	for _, dir := range m.SourceDirs(manifestPath) {
		fileSet, results, err := parseDirExt(ctx, dir, m.Extensions(), maxErrors, jobs)
		if err != nil {
			return out, err
		}
		out.FileSets = append(out.FileSets, fileSet)
		out.Files = append(out.Files, results...)
	}
	return out, nil
}
