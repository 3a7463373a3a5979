package qa

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-qa/internal/archive"
	"github.com/goliatone/go-qa/internal/authoring"
	"github.com/goliatone/go-qa/internal/export"
	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/internal/logging/console"
	"github.com/goliatone/go-qa/internal/logging/gologger"
	"github.com/goliatone/go-qa/internal/preview"
	"github.com/goliatone/go-qa/internal/report"
	"github.com/goliatone/go-qa/internal/scanner"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

// Contracts re-exported for consumers of the qa package.
type (
	Entry           = interfaces.Entry
	EntryDraft      = interfaces.EntryDraft
	ScanResult      = interfaces.ScanResult
	ScanOptions     = interfaces.ScanOptions
	AggregateReport = interfaces.AggregateReport
	ExportResult    = interfaces.ExportResult
	CreateOptions   = interfaces.CreateOptions
	CreateResult    = interfaces.CreateResult
	TidyOptions     = interfaces.TidyOptions
	TidyResult      = interfaces.TidyResult
	ParseOptions    = interfaces.ParseOptions
	EntryPreview    = interfaces.EntryPreview

	ScannerService   = interfaces.ScannerService
	ReportService    = interfaces.ReportService
	ExportService    = interfaces.ExportService
	AuthoringService = interfaces.AuthoringService
	ArchiveService   = interfaces.ArchiveService
	PreviewService   = interfaces.PreviewService
)

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider overrides the provider built from the logging
// configuration. Useful for hosts that already run a shared logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// Module is the top level toolkit facade. It wires the corpus services from
// one configuration and hands them out through accessors.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider

	scanner   interfaces.ScannerService
	reporter  interfaces.ReportService
	exporter  interfaces.ExportService
	authoring interfaces.AuthoringService
	archiver  interfaces.ArchiveService
	previewer interfaces.PreviewService
}

// New constructs a module using the provided configuration. The content root
// must exist; everything else is created lazily by the services.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	scan, err := scanner.NewService(scanner.Config{
		BasePath:  cfg.Content.BasePath,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
	}, logging.ScannerLogger(m.provider))
	if err != nil {
		return nil, err
	}
	m.scanner = scan

	m.reporter = report.NewService(logging.ReportLogger(m.provider))
	m.exporter = export.NewService(logging.ExportLogger(m.provider))

	if cfg.Features.Authoring {
		m.authoring = authoring.NewService(authoring.Config{
			BasePath: cfg.Content.BasePath,
		}, logging.AuthoringLogger(m.provider))
	}

	if cfg.Features.Archive {
		rules, err := archive.LoadConfig(cfg.Archive.RulesPath)
		if err != nil {
			return nil, err
		}
		m.archiver = archive.New(rules, logging.ArchiveLogger(m.provider))
	}

	if cfg.Features.Preview {
		parser := preview.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Preview.Extensions,
			HardWraps:  cfg.Preview.HardWraps,
			SafeMode:   cfg.Preview.SafeMode,
		})
		m.previewer = preview.NewService(parser, logging.PreviewLogger(m.provider))
	}

	return m, nil
}

// Config returns the configuration the module was built from.
func (m *Module) Config() Config {
	return m.cfg
}

// LoggerProvider exposes the provider backing every module logger. It is nil
// when the logging feature is disabled and no override was supplied.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// Scanner returns the configured scanner service.
func (m *Module) Scanner() ScannerService {
	return m.scanner
}

// Report returns the configured report service.
func (m *Module) Report() ReportService {
	return m.reporter
}

// Export returns the configured export service.
func (m *Module) Export() ExportService {
	return m.exporter
}

// Authoring returns the authoring service, or nil when the feature is disabled.
func (m *Module) Authoring() AuthoringService {
	if m == nil {
		return nil
	}
	return m.authoring
}

// Archive returns the workspace tidy service, or nil when the feature is disabled.
func (m *Module) Archive() ArchiveService {
	if m == nil {
		return nil
	}
	return m.archiver
}

// Preview returns the entry preview service, or nil when the feature is disabled.
func (m *Module) Preview() PreviewService {
	if m == nil {
		return nil
	}
	return m.previewer
}

// RenderReport renders an aggregate report into the toolkit's text layout.
func RenderReport(aggregate *AggregateReport, noColor bool) string {
	return report.Render(aggregate, report.RenderOptions{NoColor: noColor})
}

func buildLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	case "console", "":
		minLevel := consoleLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{
			MinLevel: &minLevel,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
