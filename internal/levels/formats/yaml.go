package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pacdfa/internal/automaton"
)

// ParseYAML parses a YAML level file holding one level.
func ParseYAML(data []byte) ([]*automaton.Definition, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	def, err := rec.ToDefinition()
	if err != nil {
		return nil, err
	}
	return []*automaton.Definition{def}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) ([]*automaton.Definition, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
