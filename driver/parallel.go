package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"vb6syntax/cst"
	"vb6syntax/diag"
	"vb6syntax/lexer"
	"vb6syntax/parser"
	"vb6syntax/source"
)

// IOLoadFileError marks a file that could not be read; it reuses the
// diagnostic channel so per-file results stay uniform.
const IOLoadFileError diag.Code = 9001

// TokenizeResult holds the tokenization output for one file.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Stream *lexer.TokenStream
	Bag    *diag.Bag
}

// ParseResult holds the parse output for one file.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Tree   *cst.Tree
	Bag    *diag.Bag
}

// listSourceFiles returns the sorted list of VB6 source files under dir.
func listSourceFiles(dir string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for a deterministic result order.
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every VB6 source file under dir in parallel.
// Results come back in sorted path order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeResult, error) {
	fileSet, files, loadErrors, err := loadDir(dir, DefaultExtensions)
	if err != nil {
		return nil, nil, err
	}
	results := make([]TokenizeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(loadFailure(loadErr))
				results[i] = TokenizeResult{Path: path, Bag: bag}
				return nil
			}
			file, _ := fileSet.GetByPath(path)
			results[i] = TokenizeResult{
				Path:   path,
				FileID: file.ID,
				Stream: lexer.Tokenize(file),
				Bag:    bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir parses every VB6 source file under dir in parallel. Each
// file gets its own bag; slots are indexed so no locking is needed.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseResult, error) {
	return parseDirExt(ctx, dir, DefaultExtensions, maxDiagnostics, jobs)
}

func parseDirExt(ctx context.Context, dir string, extensions []string, maxDiagnostics, jobs int) (*source.FileSet, []ParseResult, error) {
	fileSet, files, loadErrors, err := loadDir(dir, extensions)
	if err != nil {
		return nil, nil, err
	}
	results := make([]ParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(loadFailure(loadErr))
				results[i] = ParseResult{Path: path, Bag: bag}
				return nil
			}
			file, _ := fileSet.GetByPath(path)
			res := parser.Parse(lexer.Tokenize(file), parser.Options{
				MaxErrors: uint(maxDiagnostics),
				Reporter:  diag.BagReporter{Bag: bag},
			})
			results[i] = ParseResult{
				Path:   path,
				FileID: file.ID,
				Tree:   res.Tree,
				Bag:    bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// loadDir lists and preloads all source files. Load failures are kept
// per path so one unreadable file does not abort the directory.
func loadDir(dir string, extensions []string) (*source.FileSet, []string, map[string]error, error) {
	files, err := listSourceFiles(dir, extensions)
	if err != nil {
		return nil, nil, nil, err
	}
	fileSet := source.NewFileSet()
	loadErrors := make(map[string]error)
	for _, path := range files {
		if _, err := fileSet.Load(path); err != nil {
			loadErrors[path] = err
		}
	}
	return fileSet, files, loadErrors, nil
}

func jobLimit(jobs, nfiles int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if nfiles > 0 && nfiles < jobs {
		return nfiles
	}
	return jobs
}

func loadFailure(err error) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
	}
}
