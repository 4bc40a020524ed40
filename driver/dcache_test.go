package driver

import (
	"context"
	"crypto/sha256"
	"path/filepath"
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := Digest(sha256.Sum256([]byte("Dim x As Long\n")))
	in := ParseSummary{
		Schema:       diskCacheSchemaVersion,
		Path:         "mod.bas",
		Hash:         key,
		TokenCount:   9,
		NodeCount:    5,
		FailureCount: 1,
		HasErrors:    true,
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out ParseSummary
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get = %v, %v; want a hit", hit, err)
	}
	if out != in {
		t.Errorf("round trip changed the summary:\n got %+v\nwant %+v", out, in)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	var out ParseSummary
	hit, err := cache.Get(Digest(sha256.Sum256([]byte("absent"))), &out)
	if err != nil {
		t.Fatalf("miss returned an error: %v", err)
	}
	if hit {
		t.Errorf("hit on an empty cache")
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := Digest(sha256.Sum256([]byte("old")))
	stale := ParseSummary{Schema: diskCacheSchemaVersion + 1, Path: "old.bas", Hash: key}
	if err := cache.Put(key, &stale); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var out ParseSummary
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Errorf("stale schema counted as a hit")
	}
}

func TestDiskCacheOverwrite(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := Digest(sha256.Sum256([]byte("same")))
	first := ParseSummary{Schema: diskCacheSchemaVersion, Path: "a.bas", Hash: key, TokenCount: 1}
	second := ParseSummary{Schema: diskCacheSchemaVersion, Path: "a.bas", Hash: key, TokenCount: 2}
	if err := cache.Put(key, &first); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := cache.Put(key, &second); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	var out ParseSummary
	if hit, err := cache.Get(key, &out); err != nil || !hit {
		t.Fatalf("Get after overwrite = %v, %v", hit, err)
	}
	if out.TokenCount != 2 {
		t.Errorf("overwrite did not take: %+v", out)
	}
}

func TestStoreResultsFromParseDir(t *testing.T) {
	dir := seedSources(t)
	fileSet, results, err := ParseDir(context.Background(), dir, 16, 2)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	if errs := cache.StoreResults(results); len(errs) != 0 {
		t.Fatalf("StoreResults: %v", errs)
	}

	for _, res := range results {
		f := fileSet.Get(res.FileID)
		var out ParseSummary
		hit, err := cache.Get(f.Hash, &out)
		if err != nil || !hit {
			t.Fatalf("%s: cached summary missing (%v, %v)", res.Path, hit, err)
		}
		if out.Path != res.Path {
			t.Errorf("summary path = %q, want %q", out.Path, res.Path)
		}
		if out.NodeCount != res.Tree.Len() {
			t.Errorf("%s: node count %d, want %d", res.Path, out.NodeCount, res.Tree.Len())
		}
		if out.HasErrors != res.Bag.HasErrors() {
			t.Errorf("%s: error flag mismatch", res.Path)
		}
	}
}
