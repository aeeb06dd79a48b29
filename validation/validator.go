package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kbukum/listkit/errors"
)

// FieldError describes a single failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects field errors across a sequence of checks.
type Validator struct {
	errors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failed check for a field.
func (v *Validator) AddError(field, message string) *Validator {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
	return v
}

// Check records an error for field unless ok is true.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.AddError(field, message)
	}
	return v
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Identifier checks if a non-empty string is a valid identifier
// (letters, digits, underscores; must not start with a digit).
func (v *Validator) Identifier(field, value string) *Validator {
	if value == "" {
		return v
	}
	if !identifierRe.MatchString(value) {
		v.AddError(field, "must be a valid identifier")
	}
	return v
}

// Matches checks if a non-empty string matches the given pattern.
func (v *Validator) Matches(field, value string, pattern *regexp.Regexp) *Validator {
	if value == "" {
		return v
	}
	if !pattern.MatchString(value) {
		v.AddError(field, fmt.Sprintf("must match %s", pattern))
	}
	return v
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.AddError(field, fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return v
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d", minVal))
	}
	return v
}

// Valid reports whether all checks passed.
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Error returns an AppError aggregating all failed checks, or nil.
func (v *Validator) Error() error {
	if len(v.errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(v.errors))
	for _, fe := range v.errors {
		messages = append(messages, fe.Field+": "+fe.Message)
	}

	appErr := errors.Validation(strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		"fields": v.errors,
	}
	return appErr
}
