package preview

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

// ErrNilEntry means RenderEntry was called without an entry.
var ErrNilEntry = errors.New("preview: entry is required")

// Service renders parsed entries into per-section HTML for review.
type Service struct {
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

var _ interfaces.PreviewService = (*Service)(nil)

// NewService wires a preview service around the given Markdown parser. A nil
// parser falls back to the goldmark defaults.
func NewService(parser interfaces.MarkdownParser, logger interfaces.Logger) *Service {
	if parser == nil {
		parser = NewGoldmarkParser(interfaces.ParseOptions{})
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		parser: parser,
		logger: logger,
	}
}

// RenderEntry converts each section of the entry into HTML. The Think section
// is only rendered when present.
func (s *Service) RenderEntry(ctx context.Context, entry *interfaces.Entry, opts interfaces.ParseOptions) (*interfaces.EntryPreview, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if entry == nil {
		return nil, ErrNilEntry
	}

	question, err := s.parser.ParseWithOptions([]byte(entry.Question), opts)
	if err != nil {
		return nil, fmt.Errorf("preview: render question for %s: %w", entry.ID, err)
	}

	answer, err := s.parser.ParseWithOptions([]byte(entry.Answer), opts)
	if err != nil {
		return nil, fmt.Errorf("preview: render answer for %s: %w", entry.ID, err)
	}

	result := &interfaces.EntryPreview{
		QuestionHTML: question,
		AnswerHTML:   answer,
	}

	if entry.HasThink() {
		think, err := s.parser.ParseWithOptions([]byte(entry.Think), opts)
		if err != nil {
			return nil, fmt.Errorf("preview: render think for %s: %w", entry.ID, err)
		}
		result.ThinkHTML = think
	}

	s.logger.Debug("preview.entry.rendered", "id", entry.ID, "has_think", entry.HasThink())

	return result, nil
}
