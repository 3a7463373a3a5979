package reportcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-qa/internal/commands"
	"github.com/goliatone/go-qa/internal/report"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const generateOperation = "report.generate"

var _ command.Commander[GenerateCommand] = (*GenerateHandler)(nil)

// GenerateResult bundles the outcome of a report run: the structured
// aggregate, the scan it was built from, and the rendered text.
type GenerateResult struct {
	Report *interfaces.AggregateReport
	Scan   *interfaces.ScanResult
	Text   string
}

// ResultSink receives the outcome of a successful report run. CLI frontends
// use it to print the rendered text.
type ResultSink func(ctx context.Context, result *GenerateResult) error

// GenerateHandler scans the corpus and aggregates it into a report via the
// shared command handler foundation.
type GenerateHandler struct {
	inner *commands.Handler[GenerateCommand]
}

// NewGenerateHandler creates a handler bound to the supplied scanner and
// report services. sink may be nil when callers only need the log trail.
func NewGenerateHandler(scanner interfaces.ScannerService, reporter interfaces.ReportService, sink ResultSink, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateCommand]) *GenerateHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg GenerateCommand) error {
		if scanner == nil || reporter == nil {
			return errors.New("report command: scanner and report services are required")
		}

		scan, err := scanner.Scan(ctx, msg.Dir, interfaces.ScanOptions{Pattern: msg.Pattern})
		if err != nil {
			return err
		}

		aggregate, err := reporter.Aggregate(ctx, scan.Entries)
		if err != nil {
			return err
		}

		baseLogger.Info("report.command.generate.completed",
			"entries", aggregate.TotalEntries,
			"topics", aggregate.TopicCount,
			"failures", len(scan.Failures),
			"duplicates", len(scan.Duplicates),
		)

		if sink == nil {
			return nil
		}
		return sink(ctx, &GenerateResult{
			Report: aggregate,
			Scan:   scan,
			Text:   report.Render(aggregate, report.RenderOptions{NoColor: msg.NoColor}),
		})
	}

	handlerOpts := []commands.HandlerOption[GenerateCommand]{
		commands.WithLogger[GenerateCommand](baseLogger),
		commands.WithOperation[GenerateCommand](generateOperation),
		commands.WithMessageFields(func(msg GenerateCommand) map[string]any {
			fields := map[string]any{}
			if msg.Dir != "" {
				fields["dir"] = msg.Dir
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GenerateCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateCommand].
func (h *GenerateHandler) Execute(ctx context.Context, msg GenerateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegisterReportCommands builds the report command handlers and registers
// them with the provided registry.
func RegisterReportCommands(reg commands.CommandRegistry, scanner interfaces.ScannerService, reporter interfaces.ReportService, sink ResultSink, provider interfaces.LoggerProvider) (*GenerateHandler, error) {
	if scanner == nil || reporter == nil {
		return nil, errors.New("report command registration: scanner and report services are required")
	}

	handler := NewGenerateHandler(scanner, reporter, sink, commands.CommandLogger(provider, "report"))

	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
