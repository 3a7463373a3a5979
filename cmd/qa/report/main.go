package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-qa/cmd/qa/internal/bootstrap"
	"github.com/goliatone/go-qa/internal/commands"
	reportcmd "github.com/goliatone/go-qa/internal/commands/report"
)

var runtimeBuilder = bootstrap.Build

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the entry content root")
		dir        = flag.String("dir", "", "Subdirectory to scan (defaults to the whole root)")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering entry files")
		noColor    = flag.Bool("no-color", false, "Disable ANSI styling in the report output")
		logLevel   = flag.String("log-level", "warn", "Minimum log level (trace, debug, info, warn, error)")
	)

	flag.Parse()

	runtime, err := runtimeBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
		LogLevel:   *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap qa module: %v", err)
	}

	sink := func(ctx context.Context, result *reportcmd.GenerateResult) error {
		fmt.Fprintln(os.Stdout, result.Text)

		for _, failure := range result.Scan.Failures {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", failure.Path, failure.Reason)
		}
		for _, dup := range result.Scan.Duplicates {
			fmt.Fprintf(os.Stderr, "warning: duplicate id %s in %v\n", dup.ID, dup.Paths)
		}
		return nil
	}

	cfg := runtime.Module.Config()
	handler := reportcmd.NewGenerateHandler(runtime.Module.Scanner(), runtime.Module.Report(), sink, runtime.Logger,
		commands.WithTimeout[reportcmd.GenerateCommand](cfg.Commands.Timeout))

	msg := reportcmd.GenerateCommand{
		Dir:     *dir,
		Pattern: *pattern,
		NoColor: *noColor || cfg.Report.NoColor,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("generate report: %v", err)
	}
}
