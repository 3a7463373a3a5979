package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

const (
	rootModule      = "qa"
	scannerModule   = "qa.scanner"
	reportModule    = "qa.report"
	exportModule    = "qa.export"
	authoringModule = "qa.authoring"
	archiveModule   = "qa.archive"
	previewModule   = "qa.preview"
)

const (
	fieldEntryPath = "entry_path"
	fieldEntryID   = "entry_id"
	fieldEntryTop  = "topic"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ScannerLogger returns the logger namespace reserved for content scans.
func ScannerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, scannerModule)
}

// ReportLogger returns the logger namespace reserved for aggregation runs.
func ReportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, reportModule)
}

// ExportLogger returns the logger namespace reserved for export runs.
func ExportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exportModule)
}

// AuthoringLogger returns the logger namespace reserved for entry creation.
func AuthoringLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, authoringModule)
}

// ArchiveLogger returns the logger namespace reserved for workspace tidying.
func ArchiveLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, archiveModule)
}

// PreviewLogger returns the logger namespace reserved for entry previews.
func PreviewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, previewModule)
}

// WithEntryContext enriches the provided logger with common entry fields such
// as file path, entry ID, and topic. Empty values are ignored.
func WithEntryContext(logger interfaces.Logger, path, id, topic string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldEntryPath] = trimmed
	}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldEntryID] = trimmed
	}
	if trimmed := strings.TrimSpace(topic); trimmed != "" {
		fields[fieldEntryTop] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
