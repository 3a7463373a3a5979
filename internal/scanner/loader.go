package scanner

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

// LoaderConfig configures how entry files are discovered within a base directory.
type LoaderConfig struct {
	// BasePath is the root directory where entry documents live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem paths into raw entry sources with metadata.
type Loader struct {
	fs        fs.FS
	basePath  string
	pattern   string
	recursive bool
}

// FileResult carries the raw bytes of one discovered file along with the
// metadata needed to build an Entry from it.
type FileResult struct {
	Path     string
	Source   []byte
	ModTime  time.Time
	Checksum []byte
}

// WalkParams provide call-specific overrides for pattern matching and recursion.
type WalkParams struct {
	Pattern   string
	Recursive *bool
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		basePath:  filepath.Clean(cfg.BasePath),
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads a single entry file and computes its checksum.
func (l *Loader) LoadFile(ctx context.Context, path string) (*FileResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel, err := l.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("scanner loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("scanner loader stat %s: %w", rel, err)
	}

	sum := sha256.Sum256(data)

	return &FileResult{
		Path:     rel,
		Source:   data,
		ModTime:  info.ModTime(),
		Checksum: sum[:],
	}, nil
}

// Walk discovers entry files under dir and returns their raw sources in
// lexicographic path order. Unreadable files are reported, not fatal; an
// unreadable root aborts the walk with ErrRootNotFound.
func (l *Loader) Walk(ctx context.Context, dir string, opts WalkParams) ([]*FileResult, []*interfaces.ParseError, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	root, err := l.makeRelative(dir)
	if err != nil {
		return nil, nil, err
	}
	root = filepath.ToSlash(filepath.Clean(root))

	if _, err := fs.Stat(l.fs, root); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrRootNotFound, dir)
	}

	var (
		results  []*FileResult
		failures []*interfaces.ParseError
	)

	walkErr := fs.WalkDir(l.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			failures = append(failures, &interfaces.ParseError{
				Path:   filepath.ToSlash(path),
				Reason: "unreadable",
				Err:    walkErr,
			})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if !l.shouldRecurse(root, path, opts.Recursive) {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := filepath.ToSlash(path)
		if !l.matchesPattern(rel, opts.Pattern) {
			return nil
		}

		result, err := l.LoadFile(ctx, rel)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			failures = append(failures, &interfaces.ParseError{
				Path:   rel,
				Reason: "unreadable",
				Err:    err,
			})
			return nil
		}
		results = append(results, result)
		return nil
	})

	if walkErr != nil {
		return nil, nil, walkErr
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, failures, nil
}

func (l *Loader) shouldRecurse(root, current string, override *bool) bool {
	recursive := l.recursive
	if override != nil {
		recursive = *override
	}
	if recursive {
		return true
	}
	// If recursion is disabled, only walk the root directory.
	return filepath.Clean(root) == filepath.Clean(current)
}

func (l *Loader) matchesPattern(path string, override string) bool {
	pattern := override
	if strings.TrimSpace(pattern) == "" {
		pattern = l.pattern
	}
	// Normalise to slash as fs.WalkDir returns slash-separated paths for DirFS.
	pattern = filepath.ToSlash(pattern)
	if strings.Contains(pattern, "**") {
		// Basic support for ** by stripping repeated separators.
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	var target string
	if strings.Contains(pattern, "/") {
		target = path
	} else {
		target = filepath.Base(path)
	}
	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func (l *Loader) makeRelative(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	if l.basePath == "" {
		return "", fmt.Errorf("scanner loader: absolute path %s provided without base path", path)
	}
	rel, err := filepath.Rel(l.basePath, clean)
	if err != nil {
		return "", fmt.Errorf("scanner loader: make relative %s: %w", path, err)
	}
	return rel, nil
}
