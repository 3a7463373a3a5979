package archivecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const tidyMessageType = "qa.archive.tidy"

// TidyCommand sorts stray files directly under Source into their configured
// rule directories.
type TidyCommand struct {
	// Source is the workspace directory to tidy.
	Source string `json:"source"`
	// DryRun reports the would-be moves without touching the filesystem.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (TidyCommand) Type() string { return tidyMessageType }

// Validate ensures a source directory is present before handlers execute.
func (cmd TidyCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Source, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("qa.archive.tidy.source_required", "source is required")
			}
			return nil
		})),
	)
}
