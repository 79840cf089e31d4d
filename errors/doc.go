// Package errors provides the structured error type used across the analytics
// dispatcher. Every failure that reaches a caller carries a machine-readable
// ErrorCode, a human-readable message and optional details, so callers can
// branch on errors.Is or HasCode instead of matching strings.
package errors
