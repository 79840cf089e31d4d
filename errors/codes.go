package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors, surfaced synchronously from Initialize.
const (
	// ErrCodeUnknownProvider indicates a settings entry names no registered provider.
	ErrCodeUnknownProvider ErrorCode = "UNKNOWN_PROVIDER"
	// ErrCodeInvalidConfig indicates provider settings could not be resolved into options.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeBootstrapFailed indicates a provider failed while bootstrapping.
	ErrCodeBootstrapFailed ErrorCode = "BOOTSTRAP_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Delivery errors. These never escape a fan-out; they are logged per provider.
const (
	// ErrCodeProviderFailed indicates a provider capability returned an error or panicked.
	ErrCodeProviderFailed ErrorCode = "PROVIDER_FAILED"
	// ErrCodeFlushTimeout indicates providers did not flush before the deadline.
	ErrCodeFlushTimeout ErrorCode = "FLUSH_TIMEOUT"
)

var fatalCodes = map[ErrorCode]bool{
	ErrCodeUnknownProvider: true,
	ErrCodeInvalidConfig:   true,
	ErrCodeBootstrapFailed: true,
}

// IsFatalCode returns true if the code aborts initialization.
func IsFatalCode(code ErrorCode) bool {
	return fatalCodes[code]
}
