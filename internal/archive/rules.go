package archive

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config declares how stray workspace files are routed. Rules map a target
// directory to the extensions it collects; custom rules replace the default
// mapping for the directories they name and add new ones.
type Config struct {
	// DestRoot is the directory sorted files land in. Relative values are
	// resolved against the tidy source directory.
	DestRoot string              `yaml:"dest_root"`
	Ignore   []string            `yaml:"ignore"`
	Rules    map[string][]string `yaml:"rules"`
}

// DefaultConfig routes the file types that typically accumulate next to a
// Q&A corpus: exported artifacts, attachments, and scratch scripts.
func DefaultConfig() Config {
	return Config{
		Ignore: []string{".DS_Store", "thumbs.db"},
		Rules: map[string][]string{
			"attachments/images": {".png", ".jpg", ".jpeg", ".gif", ".svg"},
			"attachments/audio":  {".mp3", ".wav", ".ogg"},
			"attachments/docs":   {".pdf", ".txt", ".docx", ".odt"},
			"exports":            {".json", ".jsonl", ".csv"},
			"scripts":            {".py", ".sh"},
			"archives":           {".zip", ".tar", ".gz", ".7z"},
		},
	}
}

// LoadConfig reads a YAML rules file and merges it over the defaults. A
// missing file is not an error; the defaults apply unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("archive: read rules config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("archive: parse rules config %s: %w", path, err)
	}

	if overlay.DestRoot != "" {
		cfg.DestRoot = overlay.DestRoot
	}
	if len(overlay.Ignore) > 0 {
		cfg.Ignore = overlay.Ignore
	}
	for dir, exts := range overlay.Rules {
		cfg.Rules[dir] = exts
	}

	return cfg, nil
}

// invert flips the {directory: [extensions]} mapping into {extension:
// directory} for lookup during the tidy pass. Later directories win when two
// rules claim the same extension, in map iteration order; custom rule files
// should keep extensions unique.
func (c Config) invert() map[string]string {
	inverted := map[string]string{}
	for dir, exts := range c.Rules {
		for _, ext := range exts {
			inverted[strings.ToLower(ext)] = dir
		}
	}
	return inverted
}
