package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-qa/cmd/qa/internal/bootstrap"
	"github.com/goliatone/go-qa/internal/commands"
	exportcmd "github.com/goliatone/go-qa/internal/commands/export"
)

var runtimeBuilder = bootstrap.Build

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the entry content root")
		dir        = flag.String("dir", "", "Subdirectory to scan (defaults to the whole root)")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering entry files")
		out        = flag.String("out", "", "Destination path for the JSON bundle (defaults to the configured destination)")
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

	sink := func(ctx context.Context, result *exportcmd.BundleResult) error {
		fmt.Fprintf(os.Stdout, "wrote %d records to %s\n", result.Export.Written, result.Export.Path)

		for _, failure := range result.Scan.Failures {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", failure.Path, failure.Reason)
		}
		for _, skipped := range result.Export.Skipped {
			fmt.Fprintf(os.Stderr, "warning: skipped %s: %s\n", skipped.Path, skipped.Reason)
		}
		return nil
	}

	cfg := runtime.Module.Config()
	handler := exportcmd.NewBundleHandler(runtime.Module.Scanner(), runtime.Module.Export(), sink, runtime.Logger,
		commands.WithTimeout[exportcmd.BundleCommand](cfg.Commands.Timeout))

	destination := strings.TrimSpace(*out)
	if destination == "" {
		destination = cfg.Export.Destination
	}

	msg := exportcmd.BundleCommand{
		Dir:         *dir,
		Pattern:     *pattern,
		Destination: destination,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("export bundle: %v", err)
	}
}
