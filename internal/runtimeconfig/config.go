package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrContentDirRequired indicates the content root is missing.
var ErrContentDirRequired = errors.New("qa config: content directory is required")

// ErrContentPatternRequired indicates an empty file glob.
var ErrContentPatternRequired = errors.New("qa config: content pattern is required")

var ErrLoggingProviderRequired = errors.New("qa config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("qa config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("qa config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("qa config: logging format is invalid")
var ErrCommandTimeoutInvalid = errors.New("qa config: command timeout must be zero or positive")

// Config aggregates feature flags and adapter bindings for the toolkit.
// Fields intentionally use simple types so host applications can extend
// them later.
type Config struct {
	Content  ContentConfig
	Export   ExportConfig
	Report   ReportConfig
	Archive  ArchiveConfig
	Preview  PreviewConfig
	Commands CommandsConfig
	Features Features
	Logging  LoggingConfig
}

// ContentConfig captures filesystem behaviour for entry discovery.
type ContentConfig struct {
	// BasePath is the root of the Markdown content tree.
	BasePath string
	// Pattern is the file glob matched during scans.
	Pattern string
	// Recursive walks subdirectories when true.
	Recursive bool
}

// ExportConfig captures defaults for the JSON bundle exporter.
type ExportConfig struct {
	// Destination is the default artifact path used when a command does not
	// name one explicitly.
	Destination string
}

// ReportConfig captures rendering behaviour for the aggregate report.
type ReportConfig struct {
	NoColor bool
}

// ArchiveConfig captures workspace tidy behaviour.
type ArchiveConfig struct {
	// RulesPath points at an optional YAML rules file overriding the built-in
	// extension routing.
	RulesPath string
}

// PreviewConfig mirrors interfaces.ParseOptions for runtime configuration.
type PreviewConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	// Timeout bounds the execution of every command handler. Zero disables
	// the deadline entirely.
	Timeout time.Duration
}

// Features toggles module functionality.
type Features struct {
	Authoring bool
	Archive   bool
	Preview   bool
	Logger    bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a corpus living under
// ./content.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			BasePath:  "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Export: ExportConfig{
			Destination: "qa_bundle.json",
		},
		Report:  ReportConfig{},
		Archive: ArchiveConfig{},
		Preview: PreviewConfig{},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
		Features: Features{
			Authoring: true,
			Archive:   true,
			Preview:   true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.BasePath) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Content.Pattern) == "" {
		return ErrContentPatternRequired
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
