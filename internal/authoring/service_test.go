package authoring

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-qa/internal/scanner"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

func validDraft() interfaces.EntryDraft {
	return interfaces.EntryDraft{
		ID:         "20240315-001",
		Domain:     "python",
		Topic:      "basics",
		Subtopic:   "variables",
		Difficulty: "easy",
		Keywords:   []string{"variables", "types"},
		Question:   "What is a variable?",
		Think:      "Recall the assignment model.",
		Answer:     "A named reference to a value.",
	}
}

func TestRenderRoundTripsThroughScanner(t *testing.T) {
	draft := validDraft()

	svc := NewService(Config{BasePath: t.TempDir()}, nil)
	data, err := svc.Render(draft)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	fsys := fstest.MapFS{"entry.md": {Data: data}}
	entry, err := scanner.NewServiceWithFS(fsys, scanner.Config{}, nil).Load(context.Background(), "entry.md")
	if err != nil {
		t.Fatalf("scan rendered entry: %v", err)
	}

	if entry.ID != draft.ID || entry.Domain != draft.Domain || entry.Topic != draft.Topic {
		t.Fatalf("metadata did not round-trip: %#v", entry)
	}
	if entry.Question != draft.Question {
		t.Fatalf("question did not round-trip: %q", entry.Question)
	}
	if entry.Think != draft.Think {
		t.Fatalf("think did not round-trip: %q", entry.Think)
	}
	if entry.Answer != draft.Answer {
		t.Fatalf("answer did not round-trip: %q", entry.Answer)
	}
	if len(entry.Keywords) != 2 || entry.Keywords[0] != "variables" {
		t.Fatalf("keywords did not round-trip: %#v", entry.Keywords)
	}
}

func TestRenderOmitsEmptyThink(t *testing.T) {
	draft := validDraft()
	draft.Think = ""

	data, err := NewService(Config{BasePath: t.TempDir()}, nil).Render(draft)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(data), "# Think") {
		t.Fatalf("empty think section should not be rendered:\n%s", data)
	}
}

func TestRenderRejectsInvalidDraft(t *testing.T) {
	cases := map[string]func(*interfaces.EntryDraft){
		"empty question":   func(d *interfaces.EntryDraft) { d.Question = "" },
		"empty answer":     func(d *interfaces.EntryDraft) { d.Answer = "" },
		"bad difficulty":   func(d *interfaces.EntryDraft) { d.Difficulty = "extreme" },
		"bad id format":    func(d *interfaces.EntryDraft) { d.ID = "001" },
		"missing topic":    func(d *interfaces.EntryDraft) { d.Topic = "" },
		"missing subtopic": func(d *interfaces.EntryDraft) { d.Subtopic = "" },
	}

	svc := NewService(Config{BasePath: t.TempDir()}, nil)
	for name, mutate := range cases {
		draft := validDraft()
		mutate(&draft)
		if _, err := svc.Render(draft); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestNextIDSequencesWithinDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"python/a/b/20240315-001_first.md": {Data: []byte("x")},
		"python/a/b/20240315-003_third.md": {Data: []byte("x")},
		"python/a/b/20240314-009_older.md": {Data: []byte("x")},
		"python/a/b/unrelated_notes.md":    {Data: []byte("x")},
	}

	id, err := nextID(fsys, now)
	if err != nil {
		t.Fatalf("nextID: %v", err)
	}
	if id != "20240315-004" {
		t.Fatalf("expected 20240315-004, got %s", id)
	}
}

func TestNextIDFreshDay(t *testing.T) {
	now := time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"python/a/b/20240315-007_prev.md": {Data: []byte("x")},
	}

	id, err := nextID(fsys, now)
	if err != nil {
		t.Fatalf("nextID: %v", err)
	}
	if id != "20240316-001" {
		t.Fatalf("expected 20240316-001, got %s", id)
	}
}

func TestCreateWritesEntryFile(t *testing.T) {
	root := t.TempDir()
	svc := NewService(Config{BasePath: root}, nil)

	result, err := svc.Create(context.Background(), validDraft(), interfaces.CreateOptions{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	wantDir := filepath.Join(root, "python", "basics", "variables")
	if filepath.Dir(result.Path) != wantDir {
		t.Fatalf("entry written to %s, want directory %s", result.Path, wantDir)
	}
	base := filepath.Base(result.Path)
	if !strings.HasPrefix(base, "20240315-001_") || !strings.HasSuffix(base, ".md") {
		t.Fatalf("unexpected file name %q", base)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read created entry: %v", err)
	}
	if !strings.Contains(string(data), "# Question") || !strings.Contains(string(data), "# Answer") {
		t.Fatalf("created entry missing sections:\n%s", data)
	}
}

func TestCreateRefusesOverwrite(t *testing.T) {
	root := t.TempDir()
	svc := NewService(Config{BasePath: root}, nil)

	if _, err := svc.Create(context.Background(), validDraft(), interfaces.CreateOptions{}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), validDraft(), interfaces.CreateOptions{})
	if !errors.Is(err, ErrEntryExists) {
		t.Fatalf("expected ErrEntryExists, got %v", err)
	}

	if _, err := svc.Create(context.Background(), validDraft(), interfaces.CreateOptions{Overwrite: true}); err != nil {
		t.Fatalf("overwrite Create: %v", err)
	}
}

func TestCreateCustomFilename(t *testing.T) {
	root := t.TempDir()
	svc := NewService(Config{BasePath: root}, nil)

	result, err := svc.Create(context.Background(), validDraft(), interfaces.CreateOptions{Filename: "My Custom Name"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	base := filepath.Base(result.Path)
	if base != "my-custom-name.md" {
		t.Fatalf("custom filename not slugified: %q", base)
	}
}

func TestCreateMissingRoot(t *testing.T) {
	svc := NewService(Config{BasePath: filepath.Join(t.TempDir(), "missing")}, nil)

	_, err := svc.Create(context.Background(), validDraft(), interfaces.CreateOptions{})
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
}
