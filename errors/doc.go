// Package errors provides structured error handling for listkit.
// It implements a unified error type with machine-readable codes so
// callers can distinguish configuration mistakes from lookup misses
// without string matching.
package errors
