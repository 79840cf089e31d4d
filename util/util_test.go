package util

import (
	"testing"
	"time"
)

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"b": 2, "a": 1, "c": 3})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("expected [a b c], got %v", keys)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "hello", "world"); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		key  string
		keep int
		want string
	}{
		{"UA-123456-1", 4, "UA-1***"},
		{"abcd", 4, "***"},
		{"abc", 4, "***"},
		{"secret", 0, "***"},
	}
	for _, tc := range tests {
		if got := MaskSecret(tc.key, tc.keep); got != tc.want {
			t.Errorf("MaskSecret(%q, %d) = %q, want %q", tc.key, tc.keep, got, tc.want)
		}
	}
}

func TestSecondsSinceEpoch(t *testing.T) {
	tests := []struct {
		ms   int64
		want int64
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{1351796912123, 1351796912},
		{-1, -1},
		{-1000, -1},
		{-1001, -2},
	}
	for _, tc := range tests {
		if got := SecondsSinceEpoch(tc.ms); got != tc.want {
			t.Errorf("SecondsSinceEpoch(%d) = %d, want %d", tc.ms, got, tc.want)
		}
	}
}

func TestUnixSeconds(t *testing.T) {
	ts := time.Date(2012, 11, 1, 12, 0, 0, 500_000_000, time.UTC)
	if got := UnixSeconds(ts); got != ts.Unix() {
		t.Errorf("expected %d, got %d", ts.Unix(), got)
	}
}

func TestTimestamp(t *testing.T) {
	want := time.Date(2012, 11, 1, 12, 0, 0, 0, time.UTC)

	if got, ok := Timestamp(want); !ok || !got.Equal(want) {
		t.Errorf("time.Time: got %v, %v", got, ok)
	}
	if got, ok := Timestamp(want.UnixMilli()); !ok || !got.Equal(want) {
		t.Errorf("millis: got %v, %v", got, ok)
	}
	if got, ok := Timestamp("2012-11-01T12:00:00Z"); !ok || !got.Equal(want) {
		t.Errorf("rfc3339: got %v, %v", got, ok)
	}
	if _, ok := Timestamp("yesterday"); ok {
		t.Error("expected unparseable string to be rejected")
	}
	if _, ok := Timestamp(true); ok {
		t.Error("expected bool to be rejected")
	}
}
