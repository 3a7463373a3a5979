package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

// ErrSourceNotFound means the tidy source directory does not exist.
var ErrSourceNotFound = errors.New("archive: source directory not found")

// Archiver relocates stray files in the content workspace according to
// extension rules. Markdown entry files are never touched.
type Archiver struct {
	rules    map[string]string
	ignore   map[string]struct{}
	destRoot string
	logger   interfaces.Logger
}

var _ interfaces.ArchiveService = (*Archiver)(nil)

// New constructs an Archiver from the supplied rule configuration.
func New(cfg Config, logger interfaces.Logger) *Archiver {
	if logger == nil {
		logger = logging.NoOp()
	}

	ignore := make(map[string]struct{}, len(cfg.Ignore))
	for _, name := range cfg.Ignore {
		ignore[name] = struct{}{}
	}

	return &Archiver{
		rules:    cfg.invert(),
		ignore:   ignore,
		destRoot: cfg.DestRoot,
		logger:   logger,
	}
}

// Tidy sorts every stray file directly under source into its rule directory.
// Files without a rule, without an extension, or colliding with an existing
// destination are skipped and reported, never overwritten.
func (a *Archiver) Tidy(ctx context.Context, source string, opts interfaces.TidyOptions) (*interfaces.TidyResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	dirEntries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("archive: read source directory %s: %w", source, err)
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	destRoot := a.destRoot
	if destRoot == "" {
		destRoot = source
	} else if !filepath.IsAbs(destRoot) {
		destRoot = filepath.Join(source, destRoot)
	}

	result := &interfaces.TidyResult{}

	for _, dirEntry := range dirEntries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		name := dirEntry.Name()
		if dirEntry.IsDir() {
			continue
		}
		if _, ok := a.ignore[name]; ok {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if ext == "" {
			a.logger.Warn("archive.file.no_extension", "file", name)
			result.Skipped = append(result.Skipped, name)
			continue
		}
		if ext == ".md" {
			// Entry files stay where they are.
			continue
		}

		targetDir, ok := a.rules[ext]
		if !ok {
			a.logger.Debug("archive.file.no_rule", "file", name, "extension", ext)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		from := filepath.Join(source, name)
		to := filepath.Join(destRoot, targetDir, name)

		if _, err := os.Stat(to); err == nil {
			a.logger.Warn("archive.file.destination_exists", "file", name, "destination", to)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if !opts.DryRun {
			if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
				return nil, fmt.Errorf("archive: create destination %s: %w", filepath.Dir(to), err)
			}
			if err := os.Rename(from, to); err != nil {
				a.logger.Error("archive.file.move_failed", "file", name, "error", err)
				result.Skipped = append(result.Skipped, name)
				continue
			}
		}

		a.logger.Info("archive.file.moved", "from", from, "to", to, "dry_run", opts.DryRun)
		result.Moved = append(result.Moved, interfaces.MovedFile{From: from, To: to})
	}

	return result, nil
}
