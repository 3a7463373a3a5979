package interfaces

import "context"

// BundleMetadata mirrors the entry front-matter carried on every exported
// record. Keywords always serialises as an array, never null.
type BundleMetadata struct {
	ID         string   `json:"id"`
	Domain     string   `json:"domain,omitempty"`
	Topic      string   `json:"topic"`
	Subtopic   string   `json:"subtopic"`
	Difficulty string   `json:"difficulty"`
	Keywords   []string `json:"keywords"`
}

// BundleRecord is one instruction/response pair in the export artifact.
// ChainOfThought is null for entries without a Think section.
type BundleRecord struct {
	Instruction    string         `json:"instruction"`
	Response       string         `json:"response"`
	ChainOfThought *string        `json:"chain_of_thought"`
	Metadata       BundleMetadata `json:"metadata"`
}

// ExportResult summarises a completed export run.
type ExportResult struct {
	// Path is the destination artifact that was atomically replaced.
	Path string
	// Written counts records present in the artifact.
	Written int
	// Skipped lists entries rejected from the bundle (e.g. missing ID),
	// surfaced so no entry disappears silently.
	Skipped []*ParseError
}

// ExportService flattens entries into a single JSON artifact. The write is
// atomic: the previous artifact survives any failure.
type ExportService interface {
	Export(ctx context.Context, entries []*Entry, dest string) (*ExportResult, error)
}
