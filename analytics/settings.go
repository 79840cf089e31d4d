package analytics

import "github.com/kbukum/analytics/util"

// ProviderSetting enables one provider. Config is either a bare credential
// string or a map[string]any of options.
type ProviderSetting struct {
	Name   string
	Config any
}

// Settings lists providers to enable. Order is the fan-out order.
type Settings []ProviderSetting

// SettingsFromMap builds Settings from a name-keyed map, sorted by name so
// fan-out order is stable.
func SettingsFromMap(m map[string]any) Settings {
	settings := make(Settings, 0, len(m))
	for _, name := range util.SortedKeys(m) {
		settings = append(settings, ProviderSetting{Name: name, Config: m[name]})
	}
	return settings
}

// Names returns the provider names in order.
func (s Settings) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}
