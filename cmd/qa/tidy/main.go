package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-qa/cmd/qa/internal/bootstrap"
	"github.com/goliatone/go-qa/internal/commands"
	archivecmd "github.com/goliatone/go-qa/internal/commands/archive"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

var runtimeBuilder = bootstrap.Build

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the entry content root")
		source     = flag.String("dir", "", "Directory to tidy (defaults to the content root)")
		rulesPath  = flag.String("rules", "", "YAML rules file overriding the built-in extension routing")
		dryRun     = flag.Bool("dry-run", false, "Report the would-be moves without touching the disk")
		logLevel   = flag.String("log-level", "warn", "Minimum log level (trace, debug, info, warn, error)")
	)

	flag.Parse()

	runtime, err := runtimeBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Recursive:  true,
		RulesPath:  *rulesPath,
		LogLevel:   *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap qa module: %v", err)
	}

	target := *source
	if target == "" {
		target = *contentDir
	}

	sink := func(ctx context.Context, result *interfaces.TidyResult) error {
		verb := "moved"
		if *dryRun {
			verb = "would move"
		}
		for _, move := range result.Moved {
			fmt.Fprintf(os.Stdout, "%s %s -> %s\n", verb, move.From, move.To)
		}
		for _, skipped := range result.Skipped {
			fmt.Fprintf(os.Stderr, "skipped %s\n", skipped)
		}
		fmt.Fprintf(os.Stdout, "%d moved, %d skipped\n", len(result.Moved), len(result.Skipped))
		return nil
	}

	handler := archivecmd.NewTidyHandler(runtime.Module.Archive(), sink, runtime.Logger,
		commands.WithTimeout[archivecmd.TidyCommand](runtime.Module.Config().Commands.Timeout))

	msg := archivecmd.TidyCommand{
		Source: target,
		DryRun: *dryRun,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("tidy workspace: %v", err)
	}
}
