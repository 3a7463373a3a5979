package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-qa/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.Content.BasePath != "content" || cfg.Content.Pattern != "*.md" {
		t.Fatalf("unexpected content defaults: %#v", cfg.Content)
	}
	if !cfg.Content.Recursive {
		t.Fatal("scans should recurse by default")
	}
	if cfg.Export.Destination != "qa_bundle.json" {
		t.Fatalf("unexpected export destination default: %q", cfg.Export.Destination)
	}
	if cfg.Commands.Timeout != 30*time.Second {
		t.Fatalf("unexpected command timeout default: %v", cfg.Commands.Timeout)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.BasePath = "   "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRequiresPattern(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Pattern = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrContentPatternRequired) {
		t.Fatalf("expected ErrContentPatternRequired, got %v", err)
	}
}

func TestValidateRejectsNegativeCommandTimeout(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.Timeout = -time.Second
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCommandTimeoutInvalid) {
		t.Fatalf("expected ErrCommandTimeoutInvalid, got %v", err)
	}
}

func TestValidateLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "GoLogger"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("gologger provider should validate, got %v", err)
	}
}

func TestValidateLoggingLevelAndFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
