package previewcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-qa/internal/commands"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const renderOperation = "preview.render"

var _ command.Commander[RenderCommand] = (*RenderHandler)(nil)

// RenderResult pairs the parsed entry with its rendered sections.
type RenderResult struct {
	Entry   *interfaces.Entry
	Preview *interfaces.EntryPreview
}

// ResultSink receives the outcome of a successful render run.
type ResultSink func(ctx context.Context, result *RenderResult) error

// RenderHandler loads and renders one entry via the shared command handler
// foundation.
type RenderHandler struct {
	inner *commands.Handler[RenderCommand]
}

// NewRenderHandler creates a handler bound to the supplied scanner and
// preview services. sink may be nil when callers only need the log trail.
func NewRenderHandler(scanner interfaces.ScannerService, previewer interfaces.PreviewService, sink ResultSink, logger interfaces.Logger, opts ...commands.HandlerOption[RenderCommand]) *RenderHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderCommand) error {
		if scanner == nil || previewer == nil {
			return errors.New("preview command: scanner and preview services are required")
		}

		entry, err := scanner.Load(ctx, msg.Path)
		if err != nil {
			return err
		}

		preview, err := previewer.RenderEntry(ctx, entry, interfaces.ParseOptions{
			Extensions: msg.Extensions,
			HardWraps:  msg.HardWraps,
			SafeMode:   msg.SafeMode,
		})
		if err != nil {
			return err
		}

		baseLogger.Info("preview.command.render.completed", "id", entry.ID, "path", msg.Path)

		if sink == nil {
			return nil
		}
		return sink(ctx, &RenderResult{Entry: entry, Preview: preview})
	}

	handlerOpts := []commands.HandlerOption[RenderCommand]{
		commands.WithLogger[RenderCommand](baseLogger),
		commands.WithOperation[RenderCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderCommand) map[string]any {
			fields := map[string]any{
				"path": msg.Path,
			}
			if msg.SafeMode {
				fields["safe_mode"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderCommand].
func (h *RenderHandler) Execute(ctx context.Context, msg RenderCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegisterPreviewCommands builds the preview command handlers and registers
// them with the provided registry.
func RegisterPreviewCommands(reg commands.CommandRegistry, scanner interfaces.ScannerService, previewer interfaces.PreviewService, sink ResultSink, provider interfaces.LoggerProvider) (*RenderHandler, error) {
	if scanner == nil || previewer == nil {
		return nil, errors.New("preview command registration: scanner and preview services are required")
	}

	handler := NewRenderHandler(scanner, previewer, sink, commands.CommandLogger(provider, "preview"))

	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
