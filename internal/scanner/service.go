package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

// Config controls how the scanner discovers and parses entry files.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
}

// Service implements interfaces.ScannerService for filesystem-backed corpora.
type Service struct {
	cfg    Config
	loader *Loader
	logger interfaces.Logger
}

var _ interfaces.ScannerService = (*Service)(nil)

// NewService constructs a scanner rooted at cfg.BasePath.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return NewServiceWithFS(filesystem, cfg, logger), nil
}

// NewServiceWithFS constructs a scanner over the supplied filesystem. Used by
// hosts that embed content or tests that build trees in memory.
func NewServiceWithFS(filesystem fs.FS, cfg Config, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:    cfg,
		loader: loader,
		logger: logger,
	}
}

// Scan walks dir, parses every matching file, and returns the entries in
// lexicographic path order along with accumulated parse failures and
// duplicate IDs. A single malformed file never aborts the walk.
func (s *Service) Scan(ctx context.Context, dir string, opts interfaces.ScanOptions) (*interfaces.ScanResult, error) {
	files, failures, err := s.loader.Walk(ctx, s.normalisePath(dir), WalkParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	})
	if err != nil {
		return nil, err
	}

	result := &interfaces.ScanResult{
		Failures: failures,
	}

	byID := map[string][]string{}

	for _, file := range files {
		entry, err := buildEntry(file.Path, file.Source, file.ModTime)
		if err != nil {
			failure := &interfaces.ParseError{
				Path:   file.Path,
				Reason: parseReason(err),
				Err:    err,
			}
			result.Failures = append(result.Failures, failure)
			logging.WithEntryContext(s.logger, file.Path, "", "").Warn("scanner.parse.failed", "error", err)
			continue
		}
		entry.Checksum = file.Checksum
		result.Entries = append(result.Entries, entry)

		if id := strings.TrimSpace(entry.ID); id != "" {
			byID[id] = append(byID[id], entry.FilePath)
		}
	}

	result.Duplicates = collectDuplicates(byID)
	for _, dup := range result.Duplicates {
		s.logger.Warn("scanner.duplicate_id", "id", dup.ID, "paths", strings.Join(dup.Paths, ", "))
	}

	s.logger.Debug("scanner.scan.completed",
		"entries", len(result.Entries),
		"failures", len(result.Failures),
		"duplicates", len(result.Duplicates),
	)

	return result, nil
}

// Load reads and parses a single entry file relative to the content root.
func (s *Service) Load(ctx context.Context, path string) (*interfaces.Entry, error) {
	file, err := s.loader.LoadFile(ctx, s.normalisePath(path))
	if err != nil {
		return nil, err
	}

	entry, err := buildEntry(file.Path, file.Source, file.ModTime)
	if err != nil {
		return nil, &interfaces.ParseError{
			Path:   file.Path,
			Reason: parseReason(err),
			Err:    err,
		}
	}
	entry.Checksum = file.Checksum
	return entry, nil
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func parseReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingFrontMatter):
		return "missing front matter"
	case errors.Is(err, ErrMalformedFrontMatter):
		return "malformed front matter"
	case errors.Is(err, ErrMissingQuestion):
		return `missing "# Question" heading`
	case errors.Is(err, ErrMissingAnswer):
		return `missing "# Answer" heading`
	default:
		return "parse failed"
	}
}

func collectDuplicates(byID map[string][]string) []interfaces.Duplicate {
	var dups []interfaces.Duplicate
	for id, paths := range byID {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		dups = append(dups, interfaces.Duplicate{ID: id, Paths: paths})
	}
	sort.Slice(dups, func(i, j int) bool {
		return dups[i].ID < dups[j].ID
	})
	return dups
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, basePath)
	}
	return os.DirFS(basePath), nil
}
