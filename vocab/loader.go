package vocab

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed vivo.yaml
var defaultVocabulary []byte

// Default returns the embedded VIVO-ISF vocabulary.
func Default() (*Vocabulary, error) {
	return parse(defaultVocabulary)
}

// Load reads a vocabulary from a YAML file. Sections missing from the file
// fall back to the embedded defaults, so a file may override only the
// individual namespace or a handful of terms.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}
	return parseOver(defaultVocabulary, data)
}

// LoadFromString parses a vocabulary from YAML content layered over the
// embedded defaults.
func LoadFromString(content string) (*Vocabulary, error) {
	return parseOver(defaultVocabulary, []byte(content))
}

func parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary YAML: %w", err)
	}
	v.expandAll()
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOver(base, data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(base, &v); err != nil {
		return nil, fmt.Errorf("parsing default vocabulary YAML: %w", err)
	}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary YAML: %w", err)
	}
	v.expandAll()
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
