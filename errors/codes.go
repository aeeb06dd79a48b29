package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registration/configuration errors. These are programmer errors reported
// synchronously to the caller and never retried.
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeAlreadyExists indicates the named registration already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates the requested registration was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeConflict indicates a conflict with the current state.
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
