package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&Config{Level: level, Format: "json", Writer: &buf}, "test")
	return l, &buf
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "invalid-level", Format: "json"}, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	l, buf := newBufferLogger("debug")
	l.WithComponent("dispatcher").Error("provider failed", Fields(FieldProvider, "Mixpanel", FieldCapability, "track"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "provider failed" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry[FieldProvider] != "Mixpanel" || entry[FieldCapability] != "track" {
		t.Errorf("missing fields in %v", entry)
	}
	if entry[FieldComponent] != "dispatcher" {
		t.Errorf("missing component in %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger("warn")
	l.Info("hidden")
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info/debug to be filtered, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn to be written, got %q", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	l, buf := newBufferLogger("info")
	l.WithFields(map[string]interface{}{FieldCallID: "abc"}).Info("x")
	if !strings.Contains(buf.String(), `"call_id":"abc"`) {
		t.Errorf("expected call_id field, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	NewNop().Error("nothing happens")
}

func TestGlobalLogger(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}

	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}

	Init(Config{Level: "debug", Format: "console"})
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
}

func TestRegistryGet(t *testing.T) {
	l := NewNop()
	Register("replay", l)
	if Get("replay") != l {
		t.Error("expected registered logger")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := Config{Level: "loud", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("expected invalid level error")
	}
	bad = Config{Level: "info", Format: "xml"}
	if err := bad.Validate(); err == nil {
		t.Error("expected invalid format error")
	}
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b")
	if len(f) != 1 || f["a"] != 1 {
		t.Errorf("unexpected fields %v", f)
	}
	if MergeWithError(nil, errString("x"))[FieldError] != "x" {
		t.Error("expected error field")
	}
}

type errString string

func (e errString) Error() string { return string(e) }
