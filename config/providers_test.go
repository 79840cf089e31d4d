package config

import (
	"reflect"
	"testing"

	apperrors "github.com/kbukum/analytics/errors"
)

func TestParseProviders_Sequence(t *testing.T) {
	list, err := ParseProviders([]byte(`
providers:
  - name: Mixpanel
    key: tok
  - name: Intercom
    options:
      appId: abc
      activator: "#help"
  - name: Gauges
`))
	if err != nil {
		t.Fatalf("ParseProviders: %v", err)
	}

	settings := list.Settings()
	if got := settings.Names(); !reflect.DeepEqual(got, []string{"Mixpanel", "Intercom", "Gauges"}) {
		t.Errorf("names = %v", got)
	}
	if settings[0].Config != "tok" {
		t.Errorf("Mixpanel config = %v", settings[0].Config)
	}
	want := map[string]any{"appId": "abc", "activator": "#help"}
	if !reflect.DeepEqual(settings[1].Config, want) {
		t.Errorf("Intercom config = %v, want %v", settings[1].Config, want)
	}
	if settings[2].Config != nil {
		t.Errorf("Gauges config = %v, want nil", settings[2].Config)
	}
}

func TestParseProviders_MappingKeepsOrderAndCase(t *testing.T) {
	list, err := ParseProviders([]byte(`
providers:
  Vero: v-key
  Customer.io: {siteId: s-1}
  Google Analytics:
    trackingId: UA-1
    anonymizeIp: true
`))
	if err != nil {
		t.Fatalf("ParseProviders: %v", err)
	}

	want := ProviderList{
		{Name: "Vero", Key: "v-key"},
		{Name: "Customer.io", Options: map[string]any{"siteId": "s-1"}},
		{Name: "Google Analytics", Options: map[string]any{"trackingId": "UA-1", "anonymizeIp": true}},
	}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("list = %+v\nwant %+v", list, want)
	}
}

func TestParseProviders_Errors(t *testing.T) {
	tests := map[string]string{
		"missing name":        "providers:\n  - key: abc\n",
		"key and options":     "providers:\n  - name: X\n    key: abc\n    options: {a: 1}\n",
		"scalar providers":    "providers: Mixpanel\n",
		"sequence as setting": "providers:\n  X: [1, 2]\n",
		"malformed":           "providers: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProviders([]byte(doc))
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}

func TestLoadProviders(t *testing.T) {
	path := writeFile(t, "config.yml", "name: landing\nproviders:\n  - name: KISSmetrics\n    key: km\n")
	list, err := LoadProviders(path)
	if err != nil {
		t.Fatalf("LoadProviders: %v", err)
	}
	if len(list) != 1 || list[0].Value() != "km" {
		t.Errorf("list = %+v", list)
	}

	if _, err := LoadProviders("/nonexistent/config.yml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
