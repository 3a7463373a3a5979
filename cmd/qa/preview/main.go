package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-qa/cmd/qa/internal/bootstrap"
	"github.com/goliatone/go-qa/internal/commands"
	previewcmd "github.com/goliatone/go-qa/internal/commands/preview"
)

var runtimeBuilder = bootstrap.Build

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the entry content root")
		filePath   = flag.String("file", "", "Entry file to preview (relative to the content root)")
		extensions = flag.String("extensions", "", "Comma separated Markdown extension names (gfm, table, ...)")
		hardWraps  = flag.Bool("hard-wraps", false, "Render single newlines as line breaks")
		safeMode   = flag.Bool("safe-mode", false, "Suppress raw HTML in the rendered output")
		logLevel   = flag.String("log-level", "warn", "Minimum log level (trace, debug, info, warn, error)")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	runtime, err := runtimeBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Recursive:  true,
		LogLevel:   *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap qa module: %v", err)
	}

	sink := func(ctx context.Context, result *previewcmd.RenderResult) error {
		entry := result.Entry
		fmt.Fprintf(os.Stdout, "ID: %s\nTopic: %s / %s\nDifficulty: %s\nChecksum: %x\n\n",
			entry.ID, entry.Topic, entry.Subtopic, entry.Difficulty, entry.Checksum)

		fmt.Fprintf(os.Stdout, "Question:\n%s\n", result.Preview.QuestionHTML)
		if result.Preview.ThinkHTML != nil {
			fmt.Fprintf(os.Stdout, "\nThink:\n%s\n", result.Preview.ThinkHTML)
		}
		fmt.Fprintf(os.Stdout, "\nAnswer:\n%s\n", result.Preview.AnswerHTML)
		return nil
	}

	handler := previewcmd.NewRenderHandler(runtime.Module.Scanner(), runtime.Module.Preview(), sink, runtime.Logger,
		commands.WithTimeout[previewcmd.RenderCommand](runtime.Module.Config().Commands.Timeout))

	msg := previewcmd.RenderCommand{
		Path:       *filePath,
		Extensions: bootstrap.SplitList(*extensions),
		HardWraps:  *hardWraps,
		SafeMode:   *safeMode,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("preview entry: %v", err)
	}
}
