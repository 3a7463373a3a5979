package qa_test

import (
	"errors"
	"testing"

	qa "github.com/goliatone/go-qa"
)

func TestConfigValidateRequiresContentDir(t *testing.T) {
	cfg := qa.DefaultConfig()
	cfg.Content.BasePath = ""
	if err := cfg.Validate(); !errors.Is(err, qa.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestConfigValidateRequiresPattern(t *testing.T) {
	cfg := qa.DefaultConfig()
	cfg.Content.Pattern = " "
	if err := cfg.Validate(); !errors.Is(err, qa.ErrContentPatternRequired) {
		t.Fatalf("expected ErrContentPatternRequired, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := qa.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "invalid"

	if err := cfg.Validate(); !errors.Is(err, qa.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestDefaultConfigEnablesCoreFeatures(t *testing.T) {
	cfg := qa.DefaultConfig()
	if !cfg.Features.Authoring || !cfg.Features.Archive || !cfg.Features.Preview {
		t.Fatalf("expected core features enabled by default: %#v", cfg.Features)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}
