package interfaces

import "context"

// DifficultyCount holds the number of entries observed for a single
// difficulty value. Difficulty strings are compared exactly as read.
type DifficultyCount struct {
	Difficulty string
	Count      int
}

// SubtopicGroup aggregates entries for one subtopic within a topic.
type SubtopicGroup struct {
	Name         string
	Total        int
	Difficulties []DifficultyCount
}

// TopicGroup aggregates entries for one topic, ordered alphabetically by
// subtopic name.
type TopicGroup struct {
	Name      string
	Total     int
	Subtopics []SubtopicGroup
}

// AggregateReport is the derived, fully recomputed view over a scan: nested
// counts by topic, subtopic, and difficulty plus corpus-wide totals. Topics
// are ordered alphabetically so repeated runs over an unchanged tree render
// identical output.
type AggregateReport struct {
	TotalEntries int
	TopicCount   int
	WithThink    int
	WithoutThink int
	Topics       []TopicGroup
}

// ReportService turns a stream of entries into an aggregate report.
type ReportService interface {
	Aggregate(ctx context.Context, entries []*Entry) (*AggregateReport, error)
}
