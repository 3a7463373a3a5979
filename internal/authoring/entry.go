package authoring

import (
	"bytes"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

// idPattern matches the date-sequence identifier format (YYYYMMDD-NNN).
var idPattern = regexp.MustCompile(`^\d{8}-\d{3}$`)

// frontMatter fixes the key order of the serialized metadata block so freshly
// authored files diff cleanly against each other.
type frontMatter struct {
	ID         string   `yaml:"id"`
	Domain     string   `yaml:"domain"`
	Topic      string   `yaml:"topic"`
	Subtopic   string   `yaml:"subtopic"`
	Difficulty string   `yaml:"difficulty"`
	Keywords   []string `yaml:"keywords"`
}

// validateDraft rejects drafts that would produce files the scanner cannot
// read back. Difficulty is restricted to the canonical set at authoring time
// even though scans tolerate arbitrary values.
func validateDraft(draft interfaces.EntryDraft) error {
	return validation.ValidateStruct(&draft,
		validation.Field(&draft.ID, validation.Required, validation.Match(idPattern).Error("must use the YYYYMMDD-NNN format")),
		validation.Field(&draft.Domain, validation.Required),
		validation.Field(&draft.Topic, validation.Required),
		validation.Field(&draft.Subtopic, validation.Required),
		validation.Field(&draft.Difficulty, validation.Required, validation.In(
			interfaces.DifficultyEasy,
			interfaces.DifficultyMedium,
			interfaces.DifficultyHard,
		)),
		validation.Field(&draft.Question, validation.Required),
		validation.Field(&draft.Answer, validation.Required),
	)
}

// renderMarkdown produces the canonical file representation of a draft:
// a YAML front matter block followed by the question, optional think, and
// answer sections. Parsing the output yields the draft's fields back after
// whitespace trimming.
func renderMarkdown(draft interfaces.EntryDraft) ([]byte, error) {
	meta, err := yaml.Marshal(frontMatter{
		ID:         draft.ID,
		Domain:     draft.Domain,
		Topic:      draft.Topic,
		Subtopic:   draft.Subtopic,
		Difficulty: draft.Difficulty,
		Keywords:   draft.Keywords,
	})
	if err != nil {
		return nil, fmt.Errorf("authoring: marshal front matter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n")

	fmt.Fprintf(&b, "\n# Question\n\n%s\n", draft.Question)
	if draft.Think != "" {
		fmt.Fprintf(&b, "\n# Think\n\n%s\n", draft.Think)
	}
	fmt.Fprintf(&b, "\n# Answer\n\n%s\n", draft.Answer)

	return b.Bytes(), nil
}
