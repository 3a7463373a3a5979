package scanner

import "errors"

var (
	// ErrRootNotFound is fatal: the configured content root (or the requested
	// directory beneath it) does not exist or cannot be read.
	ErrRootNotFound = errors.New("scanner: content root not found")

	ErrMissingFrontMatter   = errors.New("scanner: front matter block is required")
	ErrMalformedFrontMatter = errors.New("scanner: front matter is malformed")
	ErrMissingQuestion      = errors.New(`scanner: "# Question" heading is required`)
	ErrMissingAnswer        = errors.New(`scanner: "# Answer" heading is required`)
)
