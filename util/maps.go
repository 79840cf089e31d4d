package util

import (
	"fmt"
	"math"
	"strconv"
)

// Map holds the traits of an identify call or the properties of a track call.
type Map = map[string]any

// Alias renames key From to To.
type Alias struct {
	From string
	To   string
}

// Clone returns a one-level copy of m. Top-level keys are copied, nested values
// are shared. A nil map yields an empty one so adapters can write to it.
func Clone(m Map) Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AliasKeys moves the value of every alias.From present in m to alias.To and
// deletes alias.From. Aliases apply in order, so when two targets collide the
// last one wins.
func AliasKeys(m Map, aliases []Alias) Map {
	for _, a := range aliases {
		v, ok := m[a.From]
		if !ok {
			continue
		}
		delete(m, a.From)
		m[a.To] = v
	}
	return m
}

// String returns m[key] when it is a non-empty string.
func String(m Map, key string) (string, bool) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Number returns m[key] as a float64 when it holds any numeric value or a
// numeric string.
func Number(m Map, key string) (float64, bool) {
	switch v := m[key].(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Stringify renders a scalar as a string; used by adapters whose wire format is
// string-only.
func Stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
