package scanner

import (
	"errors"
	"testing"
)

func TestSplitSectionsWithThink(t *testing.T) {
	body := []byte("\n# Question\n\nWhat does defer do?\n\n# Think\n\nRuns at function exit.\n\n# Answer\n\nIt schedules a call.\n")

	parts, err := splitSections(body)
	if err != nil {
		t.Fatalf("splitSections: %v", err)
	}

	if parts.Question != "What does defer do?" {
		t.Fatalf("question mismatch, got %q", parts.Question)
	}
	if parts.Think != "Runs at function exit." {
		t.Fatalf("think mismatch, got %q", parts.Think)
	}
	if parts.Answer != "It schedules a call." {
		t.Fatalf("answer mismatch, got %q", parts.Answer)
	}
}

func TestSplitSectionsWithoutThink(t *testing.T) {
	body := []byte("# Question\n\nQ text\n\n# Answer\n\nA text\n")

	parts, err := splitSections(body)
	if err != nil {
		t.Fatalf("splitSections: %v", err)
	}
	if parts.Think != "" {
		t.Fatalf("expected empty think section, got %q", parts.Think)
	}
}

func TestSplitSectionsPreservesInteriorWhitespace(t *testing.T) {
	body := []byte("# Question\n\nline one\n\nline two\n\n# Answer\n\ncode:\n\n    indented\n")

	parts, err := splitSections(body)
	if err != nil {
		t.Fatalf("splitSections: %v", err)
	}
	if parts.Question != "line one\n\nline two" {
		t.Fatalf("interior whitespace altered: %q", parts.Question)
	}
	if parts.Answer != "code:\n\n    indented" {
		t.Fatalf("indentation altered: %q", parts.Answer)
	}
}

func TestSplitSectionsMissingQuestion(t *testing.T) {
	_, err := splitSections([]byte("# Answer\n\nonly an answer\n"))
	if !errors.Is(err, ErrMissingQuestion) {
		t.Fatalf("expected ErrMissingQuestion, got %v", err)
	}
}

func TestSplitSectionsMissingAnswer(t *testing.T) {
	_, err := splitSections([]byte("# Question\n\nonly a question\n"))
	if !errors.Is(err, ErrMissingAnswer) {
		t.Fatalf("expected ErrMissingAnswer, got %v", err)
	}
}

func TestSplitSectionsIgnoresPreamble(t *testing.T) {
	body := []byte("stray text\n\n# Question\n\nQ\n\n# Answer\n\nA\n")

	parts, err := splitSections(body)
	if err != nil {
		t.Fatalf("splitSections: %v", err)
	}
	if parts.Question != "Q" {
		t.Fatalf("preamble leaked into question: %q", parts.Question)
	}
}
