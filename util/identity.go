package util

import "strings"

// IsEmailLike reports whether s looks like <local>@<domain>.<tld> with every
// part non-empty. It is a heuristic for defaulting an email trait from an id,
// not an address validator.
func IsEmailLike(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// MaskSecret keeps the first keep bytes of a credential and replaces the rest
// with "***". Keys no longer than keep are masked entirely.
func MaskSecret(key string, keep int) string {
	if keep <= 0 || len(key) <= keep {
		return "***"
	}
	return key[:keep] + "***"
}
