package exportcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-qa/internal/commands"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const bundleOperation = "export.bundle"

var _ command.Commander[BundleCommand] = (*BundleHandler)(nil)

// BundleResult carries the scan and export outcomes of a bundle run.
type BundleResult struct {
	Scan   *interfaces.ScanResult
	Export *interfaces.ExportResult
}

// ResultSink receives the outcome of a successful export run.
type ResultSink func(ctx context.Context, result *BundleResult) error

// BundleHandler scans the corpus and writes the JSON bundle via the shared
// command handler foundation.
type BundleHandler struct {
	inner *commands.Handler[BundleCommand]
}

// NewBundleHandler creates a handler bound to the supplied scanner and export
// services. sink may be nil when callers only need the log trail.
func NewBundleHandler(scanner interfaces.ScannerService, exporter interfaces.ExportService, sink ResultSink, logger interfaces.Logger, opts ...commands.HandlerOption[BundleCommand]) *BundleHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BundleCommand) error {
		if scanner == nil || exporter == nil {
			return errors.New("export command: scanner and export services are required")
		}

		scan, err := scanner.Scan(ctx, msg.Dir, interfaces.ScanOptions{Pattern: msg.Pattern})
		if err != nil {
			return err
		}

		result, err := exporter.Export(ctx, scan.Entries, msg.Destination)
		if err != nil {
			return err
		}

		baseLogger.Info("export.command.bundle.completed",
			"destination", result.Path,
			"written", result.Written,
			"skipped", len(result.Skipped),
			"parse_failures", len(scan.Failures),
		)

		if sink == nil {
			return nil
		}
		return sink(ctx, &BundleResult{Scan: scan, Export: result})
	}

	handlerOpts := []commands.HandlerOption[BundleCommand]{
		commands.WithLogger[BundleCommand](baseLogger),
		commands.WithOperation[BundleCommand](bundleOperation),
		commands.WithMessageFields(func(msg BundleCommand) map[string]any {
			fields := map[string]any{
				"destination": msg.Destination,
			}
			if msg.Dir != "" {
				fields["dir"] = msg.Dir
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BundleCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BundleHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BundleCommand].
func (h *BundleHandler) Execute(ctx context.Context, msg BundleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegisterExportCommands builds the export command handlers and registers
// them with the provided registry.
func RegisterExportCommands(reg commands.CommandRegistry, scanner interfaces.ScannerService, exporter interfaces.ExportService, sink ResultSink, provider interfaces.LoggerProvider) (*BundleHandler, error) {
	if scanner == nil || exporter == nil {
		return nil, errors.New("export command registration: scanner and export services are required")
	}

	handler := NewBundleHandler(scanner, exporter, sink, commands.CommandLogger(provider, "export"))

	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
