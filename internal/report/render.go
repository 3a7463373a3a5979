package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

// RenderOptions adjusts the textual rendering of a report.
type RenderOptions struct {
	// NoColor disables ANSI styling for plain terminals and snapshots.
	NoColor bool
}

const (
	colorHeading = lipgloss.Color("33")
	colorTopic   = lipgloss.Color("252")
	colorMuted   = lipgloss.Color("242")
)

// Render produces the human-readable report text. Output is deterministic
// for a given report: topics and subtopics arrive pre-sorted from the
// aggregator and the difficulty order is fixed.
func Render(report *interfaces.AggregateReport, opts RenderOptions) string {
	if report == nil {
		report = &interfaces.AggregateReport{}
	}

	var b strings.Builder

	writeLine(&b, stylize("--- Corpus Report ---", opts.NoColor, colorHeading))
	writeLine(&b, "")
	writeLine(&b, fmt.Sprintf("Total entries: %d", report.TotalEntries))
	writeLine(&b, fmt.Sprintf("Topics: %d", report.TopicCount))
	writeLine(&b, "")
	writeLine(&b, stylize("--- Chain-of-Thought Usage ---", opts.NoColor, colorHeading))
	writeLine(&b, fmt.Sprintf("With think section: %d", report.WithThink))
	writeLine(&b, fmt.Sprintf("Without think section: %d", report.WithoutThink))
	writeLine(&b, "")
	writeLine(&b, stylize("--- Content by Topic ---", opts.NoColor, colorHeading))

	for _, topic := range report.Topics {
		writeLine(&b, stylize(fmt.Sprintf("%s (%d)", topic.Name, topic.Total), opts.NoColor, colorTopic))
		for _, sub := range topic.Subtopics {
			writeLine(&b, fmt.Sprintf("  %s (%d)", sub.Name, sub.Total))
			for _, diff := range sub.Difficulties {
				writeLine(&b, stylize(fmt.Sprintf("    %s: %d", diff.Difficulty, diff.Count), opts.NoColor, colorMuted))
			}
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\n")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
