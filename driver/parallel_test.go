package driver

import (
	"context"
	"path/filepath"
	"testing"

	"vb6syntax/syntax"
)

func seedSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bas"), "Option Explicit\nDim x As Long\n")
	writeFile(t, filepath.Join(dir, "sub", "b.cls"), "Public Sub Touch()\nEnd Sub\n")
	writeFile(t, filepath.Join(dir, "broken.bas"), "If x\nEnd If\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not source\n")
	return dir
}

func TestParseDirCoversTree(t *testing.T) {
	dir := seedSources(t)
	fileSet, results, err := ParseDir(context.Background(), dir, 16, 4)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (txt skipped)", len(results))
	}
	// Sorted path order, independent of scheduling.
	if filepath.Base(results[0].Path) != "a.bas" ||
		filepath.Base(results[1].Path) != "broken.bas" ||
		filepath.Base(results[2].Path) != "b.cls" {
		t.Errorf("unexpected order: %v %v %v", results[0].Path, results[1].Path, results[2].Path)
	}
	for _, res := range results {
		if res.Tree == nil {
			t.Fatalf("%s: no tree", res.Path)
		}
		f := fileSet.Get(res.FileID)
		if got := res.Tree.Text(res.Tree.Root()); got != string(f.Content) {
			t.Errorf("%s: tree does not reproduce the file", res.Path)
		}
	}
	if results[0].Bag.HasErrors() {
		t.Errorf("clean file reported errors: %v", results[0].Bag.Items())
	}
	if !results[1].Bag.HasErrors() {
		t.Errorf("broken file reported no errors")
	}
}

func TestTokenizeDirStreams(t *testing.T) {
	dir := seedSources(t)
	_, results, err := TokenizeDir(context.Background(), dir, 16, 0)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, res := range results {
		if res.Stream == nil {
			t.Fatalf("%s: no stream", res.Path)
		}
		last := res.Stream.Tokens[res.Stream.Len()-1]
		if last.Kind != syntax.EOF {
			t.Errorf("%s: stream does not end in EOF", res.Path)
		}
	}
}

func TestParseDirHonorsCancel(t *testing.T) {
	dir := seedSources(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := ParseDir(ctx, dir, 16, 1); err == nil {
		t.Errorf("cancelled context did not surface an error")
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, results, err := ParseDir(context.Background(), t.TempDir(), 16, 4)
	if err != nil {
		t.Fatalf("ParseDir on empty dir: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from an empty dir", len(results))
	}
}

func TestParseProjectRespectsManifest(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, ManifestName)
	writeFile(t, manifest, `[project]
name = "app"
sources = ["src"]
extensions = [".bas"]
max_errors = 4
`)
	writeFile(t, filepath.Join(root, "src", "main.bas"), "x = 1\n")
	writeFile(t, filepath.Join(root, "src", "skipped.cls"), "y = 2\n")
	writeFile(t, filepath.Join(root, "stray.bas"), "z = 3\n")

	res, err := ParseProject(context.Background(), manifest, 2)
	if err != nil {
		t.Fatalf("ParseProject: %v", err)
	}
	if len(res.Files) != 1 || filepath.Base(res.Files[0].Path) != "main.bas" {
		t.Fatalf("parsed %d files: %+v", len(res.Files), res.Files)
	}
	if res.HasErrors() {
		t.Errorf("clean project reported errors")
	}
	if res.Files[0].Bag.Cap() != 4 {
		t.Errorf("bag cap = %d, want the manifest's max_errors", res.Files[0].Bag.Cap())
	}
}

func TestJobLimitBounds(t *testing.T) {
	if got := jobLimit(8, 3); got != 3 {
		t.Errorf("jobLimit(8, 3) = %d, want 3", got)
	}
	if got := jobLimit(2, 10); got != 2 {
		t.Errorf("jobLimit(2, 10) = %d, want 2", got)
	}
	if got := jobLimit(0, 10); got < 1 {
		t.Errorf("jobLimit(0, 10) = %d, want at least 1", got)
	}
}
