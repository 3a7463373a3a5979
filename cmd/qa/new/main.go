package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-qa/cmd/qa/internal/bootstrap"
	"github.com/goliatone/go-qa/internal/commands"
	entrycmd "github.com/goliatone/go-qa/internal/commands/entry"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

var runtimeBuilder = bootstrap.Build

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the entry content root")
		domain     = flag.String("domain", "", "Domain classification for the new entry")
		topic      = flag.String("topic", "", "Topic for the new entry")
		subtopic   = flag.String("subtopic", "", "Subtopic for the new entry")
		difficulty = flag.String("difficulty", "", "Difficulty: easy, medium, or hard")
		keywords   = flag.String("keywords", "", "Comma separated keyword list")
		question   = flag.String("question", "", "Question body (prompted interactively when empty)")
		think      = flag.String("think", "", "Optional chain-of-thought body")
		answer     = flag.String("answer", "", "Answer body (prompted interactively when empty)")
		filename   = flag.String("filename", "", "Override the generated file name")
		overwrite  = flag.Bool("overwrite", false, "Replace an existing file at the target path")
		logLevel   = flag.String("log-level", "warn", "Minimum log level (trace, debug, info, warn, error)")
	)

	flag.Parse()

	runtime, err := runtimeBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Recursive:  true,
		LogLevel:   *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap qa module: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	msg := entrycmd.CreateCommand{
		Domain:     promptLine(reader, "Domain", *domain),
		Topic:      promptLine(reader, "Topic", *topic),
		Subtopic:   promptLine(reader, "Subtopic", *subtopic),
		Difficulty: promptDifficulty(reader, *difficulty),
		Keywords:   bootstrap.SplitList(*keywords),
		Question:   promptBody(reader, "Question", *question),
		Think:      *think,
		Answer:     promptBody(reader, "Answer", *answer),
		Filename:   *filename,
		Overwrite:  *overwrite,
	}

	sink := func(ctx context.Context, result *interfaces.CreateResult) error {
		fmt.Fprintf(os.Stdout, "created %s at %s\n", result.ID, result.Path)
		return nil
	}

	handler := entrycmd.NewCreateHandler(runtime.Module.Authoring(), nil, sink, runtime.Logger,
		commands.WithTimeout[entrycmd.CreateCommand](runtime.Module.Config().Commands.Timeout))

	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("create entry: %v", err)
	}
}

// promptLine returns the flag value when set, otherwise reads one line from
// the terminal.
func promptLine(reader *bufio.Reader, label, value string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("read %s: %v", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line)
}

func promptDifficulty(reader *bufio.Reader, value string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	for {
		answer := promptLine(reader, "Difficulty (easy/medium/hard)", "")
		switch answer {
		case interfaces.DifficultyEasy, interfaces.DifficultyMedium, interfaces.DifficultyHard:
			return answer
		}
		fmt.Fprintln(os.Stderr, "please answer easy, medium, or hard")
	}
}

// promptBody reads a multi-line section terminated by a line containing only
// a period.
func promptBody(reader *bufio.Reader, label, value string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	fmt.Fprintf(os.Stderr, "%s (finish with a single '.' line):\n", label)

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("read %s: %v", strings.ToLower(label), err)
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "." {
			break
		}
		lines = append(lines, trimmed)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
