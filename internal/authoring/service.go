package authoring

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const maxSlugLength = 60

var (
	// ErrRootNotFound means the content root does not exist; authoring never
	// creates the root itself, only taxonomy directories beneath it.
	ErrRootNotFound = errors.New("authoring: content root not found")
	// ErrEntryExists guards against silently replacing an existing file.
	ErrEntryExists = errors.New("authoring: entry file already exists")
)

// Config controls where new entries are written.
type Config struct {
	BasePath string
}

// Service implements interfaces.AuthoringService on the local filesystem.
type Service struct {
	cfg    Config
	logger interfaces.Logger
}

var _ interfaces.AuthoringService = (*Service)(nil)

// NewService constructs an authoring service rooted at cfg.BasePath.
func NewService(cfg Config, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{cfg: cfg, logger: logger}
}

// NextID returns the next date-sequence identifier for an entry created now.
func (s *Service) NextID(ctx context.Context, now time.Time) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if _, err := os.Stat(s.cfg.BasePath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, s.cfg.BasePath)
	}
	return nextID(os.DirFS(s.cfg.BasePath), now)
}

// Render produces the Markdown representation of a validated draft.
func (s *Service) Render(draft interfaces.EntryDraft) ([]byte, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	return renderMarkdown(draft)
}

// Create validates the draft and writes it under domain/topic/subtopic in
// the content root. Existing files are never replaced unless opts.Overwrite
// is set.
func (s *Service) Create(ctx context.Context, draft interfaces.EntryDraft, opts interfaces.CreateOptions) (*interfaces.CreateResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.cfg.BasePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, s.cfg.BasePath)
	}

	data, err := renderMarkdown(draft)
	if err != nil {
		return nil, err
	}

	filename, err := entryFilename(draft, opts.Filename)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.cfg.BasePath, draft.Domain, draft.Topic, draft.Subtopic)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("authoring: create taxonomy directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrEntryExists, path)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("authoring: write entry %s: %w", path, err)
	}

	logging.WithEntryContext(s.logger, path, draft.ID, draft.Topic).Info("authoring.entry.created")

	return &interfaces.CreateResult{
		ID:   draft.ID,
		Path: path,
	}, nil
}

// entryFilename derives the file name for a draft: either the slugified
// custom name or the entry ID followed by a slug of the question text.
func entryFilename(draft interfaces.EntryDraft, custom string) (string, error) {
	if trimmed := strings.TrimSpace(custom); trimmed != "" {
		base := strings.TrimSuffix(trimmed, ".md")
		normalized, err := slug.Normalize(base)
		if err != nil {
			return "", fmt.Errorf("authoring: normalize filename: %w", err)
		}
		return truncateSlug(normalized) + ".md", nil
	}

	normalized, err := slug.Normalize(draft.Question)
	if err != nil {
		return "", fmt.Errorf("authoring: normalize question slug: %w", err)
	}
	return draft.ID + "_" + truncateSlug(normalized) + ".md", nil
}

func truncateSlug(value string) string {
	if len(value) > maxSlugLength {
		value = value[:maxSlugLength]
	}
	return strings.Trim(value, "-_")
}
