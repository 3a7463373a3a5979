package interfaces

import (
	"context"
	"fmt"
	"time"
)

// Difficulty levels recognised by the corpus. Grouping elsewhere is exact
// string comparison, so values outside this set still aggregate and export;
// they simply fail draft validation when authoring new entries.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Entry represents one question/answer unit discovered in the content tree.
// The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Entry struct {
	ID         string
	Domain     string
	Topic      string
	Subtopic   string
	Difficulty string
	Keywords   []string
	Question   string
	// Think holds the optional chain-of-thought section between the question
	// and the answer. Empty when the source file has no "# Think" heading.
	Think  string
	Answer string

	FilePath     string
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so
	// downstream tooling can detect changes without re-reading the file.
	Checksum []byte
	// Custom carries front-matter keys beyond the canonical entry fields.
	Custom map[string]any
}

// HasThink reports whether the entry carries a chain-of-thought section.
func (e *Entry) HasThink() bool {
	return e != nil && e.Think != ""
}

// ParseError describes a content file that could not be turned into an Entry.
// Scans accumulate these instead of aborting so a single malformed file never
// hides the rest of the corpus.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "scanner: parse error"
	}
	if e.Err != nil {
		return fmt.Sprintf("scanner: parse %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("scanner: parse %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Duplicate records entries that share an ID. The entries themselves stay in
// the scan output; the duplicate is surfaced so callers can decide what to do.
type Duplicate struct {
	ID    string
	Paths []string
}

// ScanResult carries every successfully parsed entry in deterministic path
// order alongside the failures and duplicate IDs observed during the walk.
type ScanResult struct {
	Entries    []*Entry
	Failures   []*ParseError
	Duplicates []Duplicate
}

// ScanOptions fine-tunes how entries are discovered on disk.
type ScanOptions struct {
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// Recursive overrides the service-level recursion setting when non-nil.
	Recursive *bool
}

// ScannerService walks a content tree and produces Entry records.
type ScannerService interface {
	// Scan discovers and parses every entry under dir, relative to the
	// configured content root. Parse failures are reported in the result;
	// only an unreadable root aborts the walk.
	Scan(ctx context.Context, dir string, opts ScanOptions) (*ScanResult, error)
	// Load reads and parses a single entry file.
	Load(ctx context.Context, path string) (*Entry, error)
}
