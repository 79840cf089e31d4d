package util

import (
	"net/url"
	"strings"
)

// ReadURLParameter returns the decoded value of the first key=value pair in
// query whose key equals key. The leading "?" is optional. Pairs that do not
// contain exactly one "=" are skipped.
func ReadURLParameter(query, key string) (string, bool) {
	query = strings.TrimPrefix(query, "?")
	if query == "" {
		return "", false
	}
	for _, pair := range strings.Split(query, "&") {
		parts := strings.Split(pair, "=")
		if len(parts) != 2 || parts[0] != key {
			continue
		}
		value, err := url.QueryUnescape(parts[1])
		if err != nil {
			return parts[1], true
		}
		return value, true
	}
	return "", false
}
