package scanner

import "strings"

const (
	questionHeading = "# Question"
	thinkHeading    = "# Think"
	answerHeading   = "# Answer"
)

type sections struct {
	Question string
	Think    string
	Answer   string
}

// splitSections carves the Markdown body into its question, optional think,
// and answer sections. Headings must sit alone on a line; text above the
// question heading is ignored. Both the question and answer headings are
// required, in that order.
func splitSections(body []byte) (sections, error) {
	var (
		out     sections
		current string
		buffers = map[string]*strings.Builder{
			questionHeading: {},
			thinkHeading:    {},
			answerHeading:   {},
		}
		seen = map[string]bool{}
	)

	lines := strings.Split(string(body), "\n")
	for _, line := range lines {
		switch strings.TrimRight(line, " \t\r") {
		case questionHeading, thinkHeading, answerHeading:
			current = strings.TrimRight(line, " \t\r")
			seen[current] = true
			continue
		}
		if current == "" {
			continue
		}
		buffer := buffers[current]
		buffer.WriteString(line)
		buffer.WriteString("\n")
	}

	if !seen[questionHeading] {
		return sections{}, ErrMissingQuestion
	}
	if !seen[answerHeading] {
		return sections{}, ErrMissingAnswer
	}

	out.Question = strings.TrimSpace(buffers[questionHeading].String())
	out.Think = strings.TrimSpace(buffers[thinkHeading].String())
	out.Answer = strings.TrimSpace(buffers[answerHeading].String())
	return out, nil
}
