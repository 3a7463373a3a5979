package report

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

func entry(topic, subtopic, difficulty, think string) *interfaces.Entry {
	return &interfaces.Entry{
		ID:         "20240101-001",
		Topic:      topic,
		Subtopic:   subtopic,
		Difficulty: difficulty,
		Question:   "Q",
		Think:      think,
		Answer:     "A",
	}
}

func TestAggregateCountsSumToTotal(t *testing.T) {
	entries := []*interfaces.Entry{
		entry("basics", "vars", "easy", ""),
		entry("basics", "vars", "easy", "thought"),
		entry("basics", "vars", "hard", ""),
		entry("basics", "loops", "medium", ""),
		entry("oop", "classes", "medium", "thought"),
	}

	report, err := NewService(nil).Aggregate(context.Background(), entries)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if report.TotalEntries != 5 {
		t.Fatalf("expected total 5, got %d", report.TotalEntries)
	}
	if report.TopicCount != 2 {
		t.Fatalf("expected 2 topics, got %d", report.TopicCount)
	}
	if report.WithThink != 2 || report.WithoutThink != 3 {
		t.Fatalf("think counts wrong: with=%d without=%d", report.WithThink, report.WithoutThink)
	}

	sum := 0
	for _, topic := range report.Topics {
		for _, sub := range topic.Subtopics {
			for _, diff := range sub.Difficulties {
				sum += diff.Count
			}
		}
	}
	if sum != report.TotalEntries {
		t.Fatalf("group counts sum to %d, want %d", sum, report.TotalEntries)
	}
}

func TestAggregateOrdersAlphabetically(t *testing.T) {
	entries := []*interfaces.Entry{
		entry("zeta", "b", "easy", ""),
		entry("alpha", "z", "easy", ""),
		entry("alpha", "a", "easy", ""),
	}

	report, err := NewService(nil).Aggregate(context.Background(), entries)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if report.Topics[0].Name != "alpha" || report.Topics[1].Name != "zeta" {
		t.Fatalf("topics not alphabetical: %#v", report.Topics)
	}
	subs := report.Topics[0].Subtopics
	if subs[0].Name != "a" || subs[1].Name != "z" {
		t.Fatalf("subtopics not alphabetical: %#v", subs)
	}
}

func TestAggregateDifficultyOrderIsCanonical(t *testing.T) {
	entries := []*interfaces.Entry{
		entry("t", "s", "hard", ""),
		entry("t", "s", "easy", ""),
		entry("t", "s", "medium", ""),
		entry("t", "s", "brutal", ""),
	}

	report, err := NewService(nil).Aggregate(context.Background(), entries)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	diffs := report.Topics[0].Subtopics[0].Difficulties
	want := []string{"easy", "medium", "hard", "brutal"}
	if len(diffs) != len(want) {
		t.Fatalf("expected %d difficulty buckets, got %#v", len(want), diffs)
	}
	for i, name := range want {
		if diffs[i].Difficulty != name {
			t.Fatalf("difficulty %d: got %s want %s", i, diffs[i].Difficulty, name)
		}
	}
}

func TestAggregateIsCaseSensitive(t *testing.T) {
	entries := []*interfaces.Entry{
		entry("Basics", "vars", "easy", ""),
		entry("basics", "vars", "easy", ""),
	}

	report, err := NewService(nil).Aggregate(context.Background(), entries)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	// Grouping is exact string match; "Basics" and "basics" stay apart.
	if report.TopicCount != 2 {
		t.Fatalf("expected case-sensitive grouping, got %#v", report.Topics)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	report, err := NewService(nil).Aggregate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if report.TotalEntries != 0 || report.TopicCount != 0 || len(report.Topics) != 0 {
		t.Fatalf("expected zero-count report, got %#v", report)
	}
}

func TestRenderPlainOutput(t *testing.T) {
	entries := []*interfaces.Entry{
		entry("basics", "vars", "easy", ""),
		entry("basics", "vars", "medium", "thought"),
	}

	report, err := NewService(nil).Aggregate(context.Background(), entries)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	text := Render(report, RenderOptions{NoColor: true})

	for _, want := range []string{
		"Total entries: 2",
		"Topics: 1",
		"With think section: 1",
		"basics (2)",
		"  vars (2)",
		"    easy: 1",
		"    medium: 1",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("render output missing %q:\n%s", want, text)
		}
	}
}

func TestRenderZeroReport(t *testing.T) {
	text := Render(&interfaces.AggregateReport{}, RenderOptions{NoColor: true})
	if !strings.Contains(text, "Total entries: 0") {
		t.Fatalf("zero report should still render totals:\n%s", text)
	}
}
