package scanner

import (
	"errors"
	"testing"
	"time"
)

const sampleEntry = `---
id: 20240101-001
domain: "python"
topic: "basics"
subtopic: "variables"
difficulty: "easy"
keywords:
  - "variables"
  - "types"
reviewed: true
---

# Question

What is a variable?

# Answer

A named reference to a value.
`

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := parseFrontMatter([]byte(sampleEntry))
	if err != nil {
		t.Fatalf("parseFrontMatter: %v", err)
	}

	if meta.ID != "20240101-001" {
		t.Fatalf("ID mismatch, got %q", meta.ID)
	}
	if meta.Domain != "python" || meta.Topic != "basics" || meta.Subtopic != "variables" {
		t.Fatalf("taxonomy mismatch: %#v", meta)
	}
	if meta.Difficulty != "easy" {
		t.Fatalf("difficulty mismatch, got %q", meta.Difficulty)
	}
	if len(meta.Keywords) != 2 || meta.Keywords[0] != "variables" || meta.Keywords[1] != "types" {
		t.Fatalf("keywords order not preserved: %#v", meta.Keywords)
	}
	if meta.Custom["reviewed"] != true {
		t.Fatalf("custom front matter key missing: %#v", meta.Custom)
	}
	if len(body) == 0 {
		t.Fatalf("expected body to be returned")
	}
}

func TestParseFrontMatterMissingBlock(t *testing.T) {
	_, _, err := parseFrontMatter([]byte("# Question\n\nQ\n\n# Answer\n\nA\n"))
	if !errors.Is(err, ErrMissingFrontMatter) {
		t.Fatalf("expected ErrMissingFrontMatter, got %v", err)
	}
}

func TestParseFrontMatterMalformedYAML(t *testing.T) {
	_, _, err := parseFrontMatter([]byte("---\nid: [unclosed\n---\n# Question\nQ\n# Answer\nA\n"))
	if !errors.Is(err, ErrMalformedFrontMatter) {
		t.Fatalf("expected ErrMalformedFrontMatter, got %v", err)
	}
}

func TestBuildEntry(t *testing.T) {
	modified := time.Now().UTC()

	entry, err := buildEntry("python/basics/variables/001_what_is_a_variable.md", []byte(sampleEntry), modified)
	if err != nil {
		t.Fatalf("buildEntry: %v", err)
	}

	if entry.FilePath != "python/basics/variables/001_what_is_a_variable.md" {
		t.Fatalf("expected FilePath to be set, got %q", entry.FilePath)
	}
	if entry.Question != "What is a variable?" {
		t.Fatalf("question mismatch, got %q", entry.Question)
	}
	if entry.Answer != "A named reference to a value." {
		t.Fatalf("answer mismatch, got %q", entry.Answer)
	}
	if entry.HasThink() {
		t.Fatalf("expected no think section")
	}
	if entry.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
}
