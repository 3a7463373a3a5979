package authoring

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// fileIDPattern extracts the date and sequence from entry file names, which
// carry their ID as a prefix (e.g. 20240101-003_defer_semantics.md).
var fileIDPattern = regexp.MustCompile(`^(\d{8})-(\d{3})_.*\.md$`)

// nextID scans the content tree for files created on the same date and
// returns the next free date-sequence identifier.
func nextID(fsys fs.FS, now time.Time) (string, error) {
	today := now.Format("20060102")
	highest := 0

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// A directory that cannot be listed simply contributes no IDs.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		match := fileIDPattern.FindStringSubmatch(filepath.Base(path))
		if match == nil || match[1] != today {
			return nil
		}
		seq, err := strconv.Atoi(match[2])
		if err != nil {
			return nil
		}
		if seq > highest {
			highest = seq
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("authoring: scan existing ids: %w", err)
	}

	return fmt.Sprintf("%s-%03d", today, highest+1), nil
}
