package interfaces

import (
	"context"
	"time"
)

// EntryDraft captures the inputs needed to author a new entry file. Drafts
// are validated before rendering so malformed files never reach the tree.
type EntryDraft struct {
	ID         string
	Domain     string
	Topic      string
	Subtopic   string
	Difficulty string
	Keywords   []string
	Question   string
	Think      string
	Answer     string
}

// CreateOptions adjusts how a draft is persisted.
type CreateOptions struct {
	// Filename overrides the generated file name when non-empty. The value is
	// slugified and given a .md extension if missing.
	Filename string
	// Overwrite permits replacing an existing file at the target path.
	Overwrite bool
}

// CreateResult reports where a draft landed on disk.
type CreateResult struct {
	ID   string
	Path string
}

// AuthoringService renders and persists new entries in the content tree.
type AuthoringService interface {
	// NextID returns the next date-sequence identifier (YYYYMMDD-NNN) for a
	// new entry created at the supplied time.
	NextID(ctx context.Context, now time.Time) (string, error)
	// Render produces the Markdown representation of a draft, including the
	// YAML front-matter block.
	Render(draft EntryDraft) ([]byte, error)
	// Create validates, renders, and writes the draft under
	// domain/topic/subtopic inside the content root.
	Create(ctx context.Context, draft EntryDraft, opts CreateOptions) (*CreateResult, error)
}
