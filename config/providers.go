package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/analytics/analytics"
	"github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/validation"
)

// ProviderEntry enables one provider. Key is a bare credential for providers
// with a default option key; Options is the full option mapping. At most one
// of them is set.
type ProviderEntry struct {
	Name    string         `yaml:"name" validate:"required"`
	Key     string         `yaml:"key" validate:"excluded_with=Options"`
	Options map[string]any `yaml:"options"`
}

// Value returns the entry's settings value: the key string, the options
// mapping, or nil when neither is set.
func (e ProviderEntry) Value() any {
	switch {
	case e.Options != nil:
		return e.Options
	case e.Key != "":
		return e.Key
	default:
		return nil
	}
}

// ProviderList is an ordered list of provider entries. In YAML it is either a
// sequence of entries or a mapping from name to key or options.
type ProviderList []ProviderEntry

// UnmarshalYAML accepts both list forms and keeps document order.
func (l *ProviderList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var entries []ProviderEntry
		if err := node.Decode(&entries); err != nil {
			return err
		}
		*l = entries
		return nil
	case yaml.MappingNode:
		entries := make([]ProviderEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			name, value := node.Content[i], node.Content[i+1]
			entry := ProviderEntry{Name: name.Value}
			switch value.Kind {
			case yaml.ScalarNode:
				if value.Tag != "!!null" {
					entry.Key = value.Value
				}
			case yaml.MappingNode:
				if err := value.Decode(&entry.Options); err != nil {
					return fmt.Errorf("provider %s: %w", name.Value, err)
				}
			default:
				return fmt.Errorf("provider %s: line %d: expected a key or an options mapping", name.Value, value.Line)
			}
			entries = append(entries, entry)
		}
		*l = entries
		return nil
	default:
		return fmt.Errorf("line %d: providers must be a list or a mapping", node.Line)
	}
}

// Settings converts the list into dispatcher settings, in order.
func (l ProviderList) Settings() analytics.Settings {
	settings := make(analytics.Settings, len(l))
	for i, e := range l {
		settings[i] = analytics.ProviderSetting{Name: e.Name, Config: e.Value()}
	}
	return settings
}

type providersDocument struct {
	Providers ProviderList `yaml:"providers"`
}

// ParseProviders reads the providers section of a YAML document.
func ParseProviders(data []byte) (ProviderList, error) {
	var doc providersDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "parse providers: "+err.Error()).WithCause(err)
	}
	for i, entry := range doc.Providers {
		if err := validation.Validate(&entry); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, fmt.Sprintf("providers[%d]: %v", i, err)).WithCause(err)
		}
	}
	return doc.Providers, nil
}

// LoadProviders reads the providers section of the YAML file at path.
func LoadProviders(path string) (ProviderList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers from %s: %w", path, err)
	}
	return ParseProviders(data)
}
