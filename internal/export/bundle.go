package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

var (
	// ErrDestinationRequired is returned when no artifact path is supplied.
	ErrDestinationRequired = errors.New("export: destination path is required")
)

// Service implements interfaces.ExportService. A bundle is rebuilt in full on
// every run; the destination artifact is replaced atomically so a failed run
// never corrupts the previous export.
type Service struct {
	logger interfaces.Logger
}

var _ interfaces.ExportService = (*Service)(nil)

// NewService constructs the exporter.
func NewService(logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{logger: logger}
}

// BuildBundle flattens entries into export records, preserving input order.
// Entries without an ID are excluded and flagged rather than exported with a
// hole in their metadata; callers surface the returned skips so nothing is
// dropped silently.
func (s *Service) BuildBundle(entries []*interfaces.Entry) ([]interfaces.BundleRecord, []*interfaces.ParseError) {
	records := make([]interfaces.BundleRecord, 0, len(entries))
	var skipped []*interfaces.ParseError

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if strings.TrimSpace(entry.ID) == "" {
			skipped = append(skipped, &interfaces.ParseError{
				Path:   entry.FilePath,
				Reason: "missing id",
			})
			continue
		}

		var think *string
		if entry.HasThink() {
			value := entry.Think
			think = &value
		}

		keywords := entry.Keywords
		if keywords == nil {
			keywords = []string{}
		}

		records = append(records, interfaces.BundleRecord{
			Instruction:    entry.Question,
			Response:       entry.Answer,
			ChainOfThought: think,
			Metadata: interfaces.BundleMetadata{
				ID:         entry.ID,
				Domain:     entry.Domain,
				Topic:      entry.Topic,
				Subtopic:   entry.Subtopic,
				Difficulty: entry.Difficulty,
				Keywords:   keywords,
			},
		})
	}

	return records, skipped
}

// Export builds the bundle and writes it to dest as a single JSON artifact.
func (s *Service) Export(ctx context.Context, entries []*interfaces.Entry, dest string) (*interfaces.ExportResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if strings.TrimSpace(dest) == "" {
		return nil, ErrDestinationRequired
	}

	records, skipped := s.BuildBundle(entries)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal bundle: %w", err)
	}
	data = append(data, '\n')

	if err := writeAtomic(dest, data); err != nil {
		return nil, err
	}

	for _, skip := range skipped {
		s.logger.Warn("export.record.skipped", "path", skip.Path, "reason", skip.Reason)
	}
	s.logger.Info("export.completed", "path", dest, "written", len(records), "skipped", len(skipped))

	return &interfaces.ExportResult{
		Path:    dest,
		Written: len(records),
		Skipped: skipped,
	}, nil
}
