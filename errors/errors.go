package errors

import (
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another *AppError with the same code, so sentinel-style checks
// like errors.Is(err, errors.UnknownProvider("")) work.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// UnknownProvider creates an AppError for a settings entry that names no
// registered provider.
func UnknownProvider(name string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownProvider,
		Message: fmt.Sprintf("no provider registered under %q", name),
		Details: map[string]any{"provider": name},
	}
}

// InvalidConfig creates an AppError for provider settings that cannot be
// resolved into an options mapping.
func InvalidConfig(name, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: fmt.Sprintf("invalid settings for provider %q: %s", name, reason),
		Details: map[string]any{"provider": name},
	}
}

// BootstrapFailed creates an AppError for a provider whose bootstrap failed.
func BootstrapFailed(name string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeBootstrapFailed,
		Message: fmt.Sprintf("provider %q failed to bootstrap", name),
		Details: map[string]any{"provider": name},
		Cause:   cause,
	}
}

// ProviderFailed creates an AppError for a failed capability call.
func ProviderFailed(name, capability string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeProviderFailed,
		Message: fmt.Sprintf("provider %q failed on %s", name, capability),
		Details: map[string]any{"provider": name, "capability": capability},
		Cause:   cause,
	}
}

// FlushTimeout creates an AppError for providers that missed the flush deadline.
func FlushTimeout(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeFlushTimeout,
		Message: "providers did not flush before the deadline",
		Cause:   cause,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}
