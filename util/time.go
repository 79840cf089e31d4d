package util

import "time"

// SecondsSinceEpoch converts a millisecond timestamp to Unix seconds,
// rounding toward negative infinity.
func SecondsSinceEpoch(ms int64) int64 {
	s := ms / 1000
	if ms%1000 < 0 {
		s--
	}
	return s
}

// UnixSeconds converts t to Unix seconds.
func UnixSeconds(t time.Time) int64 {
	return SecondsSinceEpoch(t.UnixMilli())
}

// Timestamp interprets a trait value as a point in time. It accepts
// time.Time, integer milliseconds and RFC 3339 strings.
func Timestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case int64:
		return time.UnixMilli(t), true
	case int:
		return time.UnixMilli(int64(t)), true
	case float64:
		return time.UnixMilli(int64(t)), true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}
