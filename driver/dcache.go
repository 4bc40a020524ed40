package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"vb6syntax/cst"
)

// Schema version; increment when the payload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a sha256 content hash, the cache key for one file.
type Digest = [32]byte

// DiskCache stores parse summaries on disk keyed by content hash, so
// repeated runs over an unchanged tree can skip reparsing when only
// counts and failure totals are needed.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// ParseSummary is the cached digest of one file's parse outcome.
type ParseSummary struct {
	Schema uint16

	Path string
	Hash Digest

	TokenCount   int
	NodeCount    uint32
	FailureCount int
	HasErrors    bool
}

// Summarize condenses a parse result into its cacheable form.
func Summarize(res *ParseResult, fileHash Digest) ParseSummary {
	s := ParseSummary{
		Schema: diskCacheSchemaVersion,
		Path:   res.Path,
		Hash:   fileHash,
	}
	if res.Tree != nil {
		s.TokenCount = len(res.Tree.Tokens())
		s.NodeCount = res.Tree.Len()
	}
	if res.Bag != nil {
		s.FailureCount = res.Bag.Len()
		s.HasErrors = res.Bag.HasErrors()
	}
	return s
}

// OpenDiskCache initializes the cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// A subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "parse", hexKey+".mp")
}

// Put serializes and writes a summary. The write goes through a temp
// file and rename, so readers never observe a partial entry.
func (c *DiskCache) Put(key Digest, payload *ParseSummary) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a summary; (false, nil) means a clean miss. Entries from
// another schema version count as misses.
func (c *DiskCache) Get(key Digest, out *ParseSummary) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// cacheKeyFor derives the cache key from the tree's file.
func cacheKeyFor(tree *cst.Tree) Digest {
	return tree.File().Hash
}

// StoreResults writes summaries for every successfully parsed file.
// Failures to cache are collected, not fatal.
func (c *DiskCache) StoreResults(results []ParseResult) []error {
	var errs []error
	for i := range results {
		if results[i].Tree == nil {
			continue
		}
		key := cacheKeyFor(results[i].Tree)
		summary := Summarize(&results[i], key)
		if err := c.Put(key, &summary); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", results[i].Path, err))
		}
	}
	return errs
}
