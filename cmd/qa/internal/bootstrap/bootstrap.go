package bootstrap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	qa "github.com/goliatone/go-qa"
	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

// Options captures configuration shared by the qa CLI entry points.
type Options struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	RulesPath  string
	LogLevel   string
	LogFormat  string
	// LoggerProvider overrides the provider built from the logging flags.
	LoggerProvider interfaces.LoggerProvider
}

// Runtime wraps the qa module plus the CLI-scoped logger. Every invocation
// gets a fresh run identifier stamped on its log entries.
type Runtime struct {
	Module *qa.Module
	Logger interfaces.Logger
	RunID  string
}

// Build constructs a qa module configured from the CLI options.
func Build(opts Options) (*Runtime, error) {
	cfg := qa.DefaultConfig()

	cfg.Content.BasePath = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.BasePath == "" {
		cfg.Content.BasePath = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive
	cfg.Archive.RulesPath = strings.TrimSpace(opts.RulesPath)

	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	moduleOpts := []qa.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, qa.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := qa.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise qa module: %w", err)
	}

	runID := uuid.NewString()
	logger := logging.WithFields(logging.ModuleLogger(module.LoggerProvider(), "qa.cli"), map[string]any{
		"run_id": runID,
	})

	return &Runtime{
		Module: module,
		Logger: logger,
		RunID:  runID,
	}, nil
}

// SplitList parses a comma separated flag value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
