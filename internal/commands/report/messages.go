package reportcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const generateMessageType = "qa.report.generate"

// GenerateCommand produces an aggregate corpus report for the entries found
// under Dir, relative to the configured content root. An empty Dir scans the
// whole root.
type GenerateCommand struct {
	// Dir narrows the scan to a subdirectory of the content root.
	Dir string `json:"dir,omitempty"`
	// Pattern overrides the configured file glob (defaults to *.md).
	Pattern string `json:"pattern,omitempty"`
	// NoColor disables ANSI styling in the rendered report text.
	NoColor bool `json:"no_color,omitempty"`
}

// Type implements command.Message.
func (GenerateCommand) Type() string { return generateMessageType }

// Validate rejects patterns that escape the content root.
func (cmd GenerateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Dir, validation.By(func(value any) error {
			if strings.Contains(value.(string), "..") {
				return validation.NewError("qa.report.generate.dir_invalid", "dir must not traverse outside the content root")
			}
			return nil
		})),
	)
}
