package exportcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const bundleMessageType = "qa.export.bundle"

// BundleCommand exports every valid entry under Dir into a single JSON
// artifact at Destination.
type BundleCommand struct {
	// Dir narrows the scan to a subdirectory of the content root.
	Dir string `json:"dir,omitempty"`
	// Pattern overrides the configured file glob (defaults to *.md).
	Pattern string `json:"pattern,omitempty"`
	// Destination is the output path for the JSON bundle.
	Destination string `json:"destination"`
}

// Type implements command.Message.
func (BundleCommand) Type() string { return bundleMessageType }

// Validate ensures a destination path is present before handlers execute.
func (cmd BundleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Destination, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("qa.export.bundle.destination_required", "destination is required")
			}
			return nil
		})),
	)
}
