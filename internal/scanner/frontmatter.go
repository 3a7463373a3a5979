package scanner

import (
	"bytes"
	"errors"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

type frontMatterEnvelope struct {
	ID         string         `yaml:"id"`
	Domain     string         `yaml:"domain"`
	Topic      string         `yaml:"topic"`
	Subtopic   string         `yaml:"subtopic"`
	Difficulty string         `yaml:"difficulty"`
	Keywords   []string       `yaml:"keywords"`
	Custom     map[string]any `yaml:",inline"`
}

// parseFrontMatter extracts entry metadata and the Markdown body from the
// provided source bytes. A file without a front matter block is rejected
// rather than treated as an all-body document.
func parseFrontMatter(source []byte) (frontMatterEnvelope, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.MustParse(reader, &meta)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return frontMatterEnvelope{}, nil, ErrMissingFrontMatter
		}
		return frontMatterEnvelope{}, nil, errors.Join(ErrMalformedFrontMatter, err)
	}

	return meta, body, nil
}

// buildEntry assembles an interfaces.Entry from the supplied file path, raw
// content, and modification time.
func buildEntry(path string, source []byte, modified time.Time) (*interfaces.Entry, error) {
	meta, body, err := parseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	parts, err := splitSections(body)
	if err != nil {
		return nil, err
	}

	return &interfaces.Entry{
		ID:           meta.ID,
		Domain:       meta.Domain,
		Topic:        meta.Topic,
		Subtopic:     meta.Subtopic,
		Difficulty:   meta.Difficulty,
		Keywords:     append([]string(nil), meta.Keywords...),
		Question:     parts.Question,
		Think:        parts.Think,
		Answer:       parts.Answer,
		FilePath:     path,
		LastModified: modified,
		Custom:       cloneMap(meta.Custom),
	}, nil
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
