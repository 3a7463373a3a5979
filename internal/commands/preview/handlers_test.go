package previewcmd

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

type stubScanner struct {
	path  string
	entry *interfaces.Entry
}

func (s *stubScanner) Scan(context.Context, string, interfaces.ScanOptions) (*interfaces.ScanResult, error) {
	return nil, nil
}

func (s *stubScanner) Load(ctx context.Context, path string) (*interfaces.Entry, error) {
	s.path = path
	return s.entry, nil
}

type stubPreviewer struct {
	opts    interfaces.ParseOptions
	preview *interfaces.EntryPreview
}

func (s *stubPreviewer) RenderEntry(ctx context.Context, entry *interfaces.Entry, opts interfaces.ParseOptions) (*interfaces.EntryPreview, error) {
	s.opts = opts
	return s.preview, nil
}

func TestRenderHandlerDeliversResult(t *testing.T) {
	scanner := &stubScanner{entry: &interfaces.Entry{ID: "20240101-001"}}
	previewer := &stubPreviewer{preview: &interfaces.EntryPreview{QuestionHTML: []byte("<p>Q</p>")}}

	var got *RenderResult
	sink := func(ctx context.Context, result *RenderResult) error {
		got = result
		return nil
	}

	h := NewRenderHandler(scanner, previewer, sink, nil)
	msg := RenderCommand{Path: "golang/entry.md", SafeMode: true, Extensions: []string{"table"}}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if scanner.path != "golang/entry.md" {
		t.Fatalf("scanner not invoked with path: %q", scanner.path)
	}
	if !previewer.opts.SafeMode || len(previewer.opts.Extensions) != 1 {
		t.Fatalf("parse options not forwarded: %#v", previewer.opts)
	}
	if got == nil || got.Entry.ID != "20240101-001" {
		t.Fatalf("sink did not receive the render result: %#v", got)
	}
}

func TestRenderHandlerRequiresPath(t *testing.T) {
	h := NewRenderHandler(&stubScanner{}, &stubPreviewer{}, nil, nil)

	err := h.Execute(context.Background(), RenderCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
