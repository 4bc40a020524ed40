package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, ManifestName)
	writeFile(t, manifest, "[project]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "forms")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest = %q, %v, %v", got, ok, err)
	}
	if got != manifest {
		t.Errorf("found %q, want %q", got, manifest)
	}
}

func TestFindManifestMiss(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("found a manifest in an empty tree")
	}
}

func TestLoadManifestValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, `[project]
name = "billing"
sources = ["src", "forms"]
extensions = [".bas"]
max_errors = 32
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Project.Name != "billing" || m.Project.MaxErrors != 32 {
		t.Errorf("decoded %+v", m.Project)
	}
	if got := m.Extensions(); len(got) != 1 || got[0] != ".bas" {
		t.Errorf("Extensions() = %v", got)
	}

	dirs := m.SourceDirs(path)
	root := filepath.Dir(path)
	if len(dirs) != 2 || dirs[0] != filepath.Join(root, "src") || dirs[1] != filepath.Join(root, "forms") {
		t.Errorf("SourceDirs = %v", dirs)
	}
}

func TestManifestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, "[project]\nname = \"bare\"\n")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if got := m.Extensions(); len(got) != len(DefaultExtensions) {
		t.Errorf("Extensions() = %v, want defaults", got)
	}
	dirs := m.SourceDirs(path)
	if len(dirs) != 1 || dirs[0] != filepath.Dir(path) {
		t.Errorf("SourceDirs = %v, want just the project root", dirs)
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, "[project\n")
	if _, err := LoadManifest(path); err == nil {
		t.Errorf("malformed manifest did not error")
	}
}
