package reportcmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

type stubScanner struct {
	scanDirs []string
	result   *interfaces.ScanResult
	err      error
}

func (s *stubScanner) Scan(ctx context.Context, dir string, opts interfaces.ScanOptions) (*interfaces.ScanResult, error) {
	s.scanDirs = append(s.scanDirs, dir)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubScanner) Load(context.Context, string) (*interfaces.Entry, error) {
	return nil, nil
}

type stubReporter struct {
	report *interfaces.AggregateReport
	err    error
}

func (s *stubReporter) Aggregate(ctx context.Context, entries []*interfaces.Entry) (*interfaces.AggregateReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func sampleScan() *interfaces.ScanResult {
	return &interfaces.ScanResult{
		Entries: []*interfaces.Entry{
			{ID: "20240101-001", Topic: "concurrency", Subtopic: "channels", Difficulty: "easy", Question: "Q", Answer: "A"},
		},
	}
}

func TestGenerateHandlerDeliversResult(t *testing.T) {
	scanner := &stubScanner{result: sampleScan()}
	reporter := &stubReporter{report: &interfaces.AggregateReport{TotalEntries: 1, TopicCount: 1}}

	var got *GenerateResult
	sink := func(ctx context.Context, result *GenerateResult) error {
		got = result
		return nil
	}

	h := NewGenerateHandler(scanner, reporter, sink, nil)
	if err := h.Execute(context.Background(), GenerateCommand{Dir: "golang", NoColor: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(scanner.scanDirs) != 1 || scanner.scanDirs[0] != "golang" {
		t.Fatalf("scanner not invoked with dir: %#v", scanner.scanDirs)
	}
	if got == nil || got.Report.TotalEntries != 1 {
		t.Fatalf("sink did not receive the aggregate: %#v", got)
	}
	if !strings.Contains(got.Text, "Corpus Report") {
		t.Fatalf("rendered text missing, got %q", got.Text)
	}
}

func TestGenerateHandlerRejectsTraversal(t *testing.T) {
	h := NewGenerateHandler(&stubScanner{result: sampleScan()}, &stubReporter{report: &interfaces.AggregateReport{}}, nil, nil)

	err := h.Execute(context.Background(), GenerateCommand{Dir: "../outside"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestGenerateHandlerWrapsScanError(t *testing.T) {
	scanner := &stubScanner{err: errors.New("walk failed")}
	h := NewGenerateHandler(scanner, &stubReporter{}, nil, nil)

	err := h.Execute(context.Background(), GenerateCommand{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
