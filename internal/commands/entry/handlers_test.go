package entrycmd

import (
	"context"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

type stubAuthoring struct {
	nextID string
	draft  interfaces.EntryDraft
	opts   interfaces.CreateOptions
}

func (s *stubAuthoring) NextID(ctx context.Context, now time.Time) (string, error) {
	return s.nextID, nil
}

func (s *stubAuthoring) Render(draft interfaces.EntryDraft) ([]byte, error) {
	return nil, nil
}

func (s *stubAuthoring) Create(ctx context.Context, draft interfaces.EntryDraft, opts interfaces.CreateOptions) (*interfaces.CreateResult, error) {
	s.draft = draft
	s.opts = opts
	return &interfaces.CreateResult{ID: draft.ID, Path: "content/" + draft.ID + ".md"}, nil
}

func validCommand() CreateCommand {
	return CreateCommand{
		Domain:     "golang",
		Topic:      "concurrency",
		Subtopic:   "channels",
		Difficulty: "medium",
		Question:   "What is a nil channel?",
		Answer:     "Sends and receives on it block forever.",
	}
}

func TestCreateHandlerAllocatesID(t *testing.T) {
	authoring := &stubAuthoring{nextID: "20240315-002"}

	var got *interfaces.CreateResult
	sink := func(ctx context.Context, result *interfaces.CreateResult) error {
		got = result
		return nil
	}

	clock := func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	h := NewCreateHandler(authoring, clock, sink, nil)
	if err := h.Execute(context.Background(), validCommand()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if authoring.draft.ID != "20240315-002" {
		t.Fatalf("draft should carry the allocated id, got %q", authoring.draft.ID)
	}
	if got == nil || got.ID != "20240315-002" {
		t.Fatalf("sink did not receive the create result: %#v", got)
	}
}

func TestCreateHandlerKeepsExplicitID(t *testing.T) {
	authoring := &stubAuthoring{nextID: "20240315-002"}
	h := NewCreateHandler(authoring, nil, nil, nil)

	cmd := validCommand()
	cmd.ID = "20240101-007"
	if err := h.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if authoring.draft.ID != "20240101-007" {
		t.Fatalf("explicit id must win, got %q", authoring.draft.ID)
	}
}

func TestCreateHandlerForwardsOptions(t *testing.T) {
	authoring := &stubAuthoring{nextID: "20240315-001"}
	h := NewCreateHandler(authoring, nil, nil, nil)

	cmd := validCommand()
	cmd.Filename = "custom-name"
	cmd.Overwrite = true
	if err := h.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if authoring.opts.Filename != "custom-name" || !authoring.opts.Overwrite {
		t.Fatalf("create options not forwarded: %#v", authoring.opts)
	}
}

func TestCreateHandlerRequiresDomain(t *testing.T) {
	authoring := &stubAuthoring{nextID: "20240315-001"}
	h := NewCreateHandler(authoring, nil, nil, nil)

	cmd := validCommand()
	cmd.Domain = ""
	err := h.Execute(context.Background(), cmd)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if authoring.draft.ID != "" {
		t.Fatalf("no draft should reach the authoring service, got %#v", authoring.draft)
	}
}

func TestCreateHandlerValidatesDifficulty(t *testing.T) {
	h := NewCreateHandler(&stubAuthoring{nextID: "20240315-001"}, nil, nil, nil)

	cmd := validCommand()
	cmd.Difficulty = "impossible"
	err := h.Execute(context.Background(), cmd)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
