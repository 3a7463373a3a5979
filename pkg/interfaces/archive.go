package interfaces

import "context"

// MovedFile records a single relocation performed by a tidy run.
type MovedFile struct {
	From string
	To   string
}

// TidyOptions adjusts how the workspace organizer behaves.
type TidyOptions struct {
	// DryRun reports the moves that would happen without touching the disk.
	DryRun bool
}

// TidyResult summarises a tidy pass over the workspace.
type TidyResult struct {
	Moved   []MovedFile
	Skipped []string
}

// ArchiveService relocates stray non-Markdown files (attachments, exports,
// scratch scripts) out of the content workspace according to extension rules.
// Entry files themselves are never moved.
type ArchiveService interface {
	Tidy(ctx context.Context, source string, opts TidyOptions) (*TidyResult, error)
}
