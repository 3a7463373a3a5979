package previewcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const renderMessageType = "qa.preview.render"

// RenderCommand renders one entry file into per-section HTML.
type RenderCommand struct {
	// Path locates the entry file relative to the content root.
	Path string `json:"path"`
	// Extensions selects the Markdown extensions by name (gfm, table, ...).
	Extensions []string `json:"extensions,omitempty"`
	// HardWraps renders single newlines as line breaks.
	HardWraps bool `json:"hard_wraps,omitempty"`
	// SafeMode suppresses raw HTML in the output.
	SafeMode bool `json:"safe_mode,omitempty"`
}

// Type implements command.Message.
func (RenderCommand) Type() string { return renderMessageType }

// Validate ensures an entry path is present before handlers execute.
func (cmd RenderCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("qa.preview.render.path_required", "path is required")
			}
			return nil
		})),
	)
}
