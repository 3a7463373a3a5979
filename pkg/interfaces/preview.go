package interfaces

import "context"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across invocations without locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// EntryPreview holds the rendered HTML for each section of an entry.
// ThinkHTML is nil when the entry has no Think section.
type EntryPreview struct {
	QuestionHTML []byte
	ThinkHTML    []byte
	AnswerHTML   []byte
}

// PreviewService renders entry sections into HTML for review.
type PreviewService interface {
	RenderEntry(ctx context.Context, entry *Entry, opts ParseOptions) (*EntryPreview, error)
}
