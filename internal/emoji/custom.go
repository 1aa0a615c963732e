package emoji

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/prettytext/internal/errors"
)

var customNamePattern = regexp.MustCompile(`^[\w+\-]+$`)

// CustomSet is a site's own emoji and emoticons, usually loaded from YAML:
//
//	emoji:
//	  parrot: /uploads/default/parrot.gif
//	translations:
//	  "(y)": "+1"
type CustomSet struct {
	Emoji        map[string]string `yaml:"emoji"`
	Translations map[string]string `yaml:"translations"`
}

// LoadCustomFile reads and validates a custom emoji file.
func LoadCustomFile(path string) (*CustomSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileRead, "cannot read custom emoji file", err).
			WithContext("path", path)
	}
	set, err := ParseCustom(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParseCustom decodes and validates a custom emoji document.
func ParseCustom(data []byte) (*CustomSet, error) {
	var set CustomSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidConfig, "malformed custom emoji file").
			WithContext("cause", err.Error())
	}

	collector := errors.NewCollector()
	for name, url := range set.Emoji {
		if !customNamePattern.MatchString(name) {
			collector.Add(fmt.Errorf("emoji name %q may only contain letters, digits, '_', '+' and '-'", name))
		}
		if url == "" {
			collector.Add(fmt.Errorf("emoji %q has no url", name))
		}
	}
	for emoticon, name := range set.Translations {
		if emoticon == "" {
			collector.Add(fmt.Errorf("empty emoticon for %q", name))
		}
		if _, known := set.Emoji[name]; !known && !names[name] && aliases[name] == "" {
			collector.Add(fmt.Errorf("emoticon %q refers to unknown emoji %q", emoticon, name))
		}
	}
	if collector.HasErrors() {
		return nil, collector.Err(errors.ErrCodeInvalidConfig, "invalid custom emoji file")
	}
	return &set, nil
}
