package archivecmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-qa/internal/commands"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const tidyOperation = "archive.tidy"

var _ command.Commander[TidyCommand] = (*TidyHandler)(nil)

// ResultSink receives the tidy result of a successful run.
type ResultSink func(ctx context.Context, result *interfaces.TidyResult) error

// TidyHandler sorts a workspace directory via the shared command handler
// foundation.
type TidyHandler struct {
	inner *commands.Handler[TidyCommand]
}

// NewTidyHandler creates a handler bound to the supplied archive service.
// sink may be nil when callers only need the log trail.
func NewTidyHandler(archiver interfaces.ArchiveService, sink ResultSink, logger interfaces.Logger, opts ...commands.HandlerOption[TidyCommand]) *TidyHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg TidyCommand) error {
		if archiver == nil {
			return errors.New("archive command: archive service is required")
		}

		result, err := archiver.Tidy(ctx, msg.Source, interfaces.TidyOptions{DryRun: msg.DryRun})
		if err != nil {
			return err
		}

		baseLogger.Info("archive.command.tidy.completed",
			"moved", len(result.Moved),
			"skipped", len(result.Skipped),
			"dry_run", msg.DryRun,
		)

		if sink == nil {
			return nil
		}
		return sink(ctx, result)
	}

	handlerOpts := []commands.HandlerOption[TidyCommand]{
		commands.WithLogger[TidyCommand](baseLogger),
		commands.WithOperation[TidyCommand](tidyOperation),
		commands.WithMessageFields(func(msg TidyCommand) map[string]any {
			fields := map[string]any{
				"source": msg.Source,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[TidyCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &TidyHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[TidyCommand].
func (h *TidyHandler) Execute(ctx context.Context, msg TidyCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegisterArchiveCommands builds the archive command handlers and registers
// them with the provided registry.
func RegisterArchiveCommands(reg commands.CommandRegistry, archiver interfaces.ArchiveService, sink ResultSink, provider interfaces.LoggerProvider) (*TidyHandler, error) {
	if archiver == nil {
		return nil, errors.New("archive command registration: archive service is required")
	}

	handler := NewTidyHandler(archiver, sink, commands.CommandLogger(provider, "archive"))

	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
