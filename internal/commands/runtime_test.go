package commands

import (
	"context"
	"testing"
	"time"
)

func TestEnsureContextFallsBackToBackground(t *testing.T) {
	if ctx := EnsureContext(nil); ctx == nil {
		t.Fatal("expected a non-nil context")
	}

	base := context.Background()
	if ctx := EnsureContext(base); ctx != base {
		t.Fatal("existing context must be returned unchanged")
	}
}

func TestWithCommandTimeoutAppliesDeadline(t *testing.T) {
	ctx, cancel := WithCommandTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a deadline on the derived context")
	}
}

func TestWithCommandTimeoutZeroIsPassthrough(t *testing.T) {
	base := context.Background()
	ctx, cancel := WithCommandTimeout(base, 0)
	defer cancel()

	if ctx != base {
		t.Fatal("zero timeout must not derive a new context")
	}
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("zero timeout must not apply a deadline")
	}
}

func TestEnsureLoggerDefaultsToNoOp(t *testing.T) {
	if logger := EnsureLogger(nil); logger == nil {
		t.Fatal("expected a usable logger")
	}
}
