package report

import (
	"context"
	"sort"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

// canonicalDifficulties render first, in fixed order. Anything else observed
// in the corpus follows alphabetically; grouping never normalises case.
var canonicalDifficulties = []string{
	interfaces.DifficultyEasy,
	interfaces.DifficultyMedium,
	interfaces.DifficultyHard,
}

// Service implements interfaces.ReportService over an in-memory entry slice.
type Service struct {
	logger interfaces.Logger
}

var _ interfaces.ReportService = (*Service)(nil)

// NewService constructs the aggregator.
func NewService(logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{logger: logger}
}

// Aggregate recomputes the full report from scratch: nested counts keyed by
// exact topic/subtopic/difficulty strings, plus corpus totals. Zero entries
// produce a zero-count report, not an error.
func (s *Service) Aggregate(ctx context.Context, entries []*interfaces.Entry) (*interfaces.AggregateReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	type subtopicCounts map[string]int
	topics := map[string]map[string]subtopicCounts{}

	report := &interfaces.AggregateReport{}

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		report.TotalEntries++
		if entry.HasThink() {
			report.WithThink++
		} else {
			report.WithoutThink++
		}

		subs, ok := topics[entry.Topic]
		if !ok {
			subs = map[string]subtopicCounts{}
			topics[entry.Topic] = subs
		}
		counts, ok := subs[entry.Subtopic]
		if !ok {
			counts = subtopicCounts{}
			subs[entry.Subtopic] = counts
		}
		counts[entry.Difficulty]++
	}

	report.TopicCount = len(topics)
	report.Topics = make([]interfaces.TopicGroup, 0, len(topics))

	for _, topicName := range sortedKeys(topics) {
		subs := topics[topicName]
		group := interfaces.TopicGroup{
			Name:      topicName,
			Subtopics: make([]interfaces.SubtopicGroup, 0, len(subs)),
		}
		for _, subName := range sortedKeys(subs) {
			counts := subs[subName]
			subGroup := interfaces.SubtopicGroup{
				Name:         subName,
				Difficulties: orderedCounts(counts),
			}
			for _, count := range counts {
				subGroup.Total += count
			}
			group.Total += subGroup.Total
			group.Subtopics = append(group.Subtopics, subGroup)
		}
		report.Topics = append(report.Topics, group)
	}

	s.logger.Debug("report.aggregate.completed",
		"entries", report.TotalEntries,
		"topics", report.TopicCount,
	)

	return report, nil
}

// orderedCounts emits easy/medium/hard first (omitting zero buckets), then
// any remaining difficulty strings alphabetically so output stays stable.
func orderedCounts(counts map[string]int) []interfaces.DifficultyCount {
	out := make([]interfaces.DifficultyCount, 0, len(counts))
	seen := map[string]bool{}

	for _, name := range canonicalDifficulties {
		if count, ok := counts[name]; ok {
			out = append(out, interfaces.DifficultyCount{Difficulty: name, Count: count})
		}
		seen[name] = true
	}

	var rest []string
	for name := range counts {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, interfaces.DifficultyCount{Difficulty: name, Count: counts[name]})
	}

	return out
}

func sortedKeys[V any](input map[string]V) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
