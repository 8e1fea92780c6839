package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Invocation errors
	ErrCodeUsage ErrorCode = "USAGE"

	// Settings errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrCodeOutputWrite ErrorCode = "OUTPUT_WRITE"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// PromptError is an error with a stable code, a message meant for the user
// and optional details for verbose reporting.
type PromptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Cause   error
}

func (e *PromptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PromptError) Unwrap() error {
	return e.Cause
}

// Is lets the standard errors.Is match any PromptError carrying the same
// code, e.g. errors.Is(err, &PromptError{Code: ErrCodeUsage}).
func (e *PromptError) Is(target error) bool {
	t, ok := target.(*PromptError)
	return ok && t.Code == e.Code
}

// Summary is the one-line text shown to the user. Usage errors print the
// message alone; other codes append the cause.
func (e *PromptError) Summary() string {
	if e.Cause == nil || e.Code == ErrCodeUsage {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// WithDetail adds a detail to the error
func (e *PromptError) WithDetail(key string, value interface{}) *PromptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// MarshalJSON flattens the cause to its text.
func (e *PromptError) MarshalJSON() ([]byte, error) {
	out := struct {
		Code    ErrorCode              `json:"code"`
		Message string                 `json:"message"`
		Cause   string                 `json:"cause,omitempty"`
		Details map[string]interface{} `json:"details,omitempty"`
	}{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	if e.Cause != nil {
		out.Cause = e.Cause.Error()
	}
	return json.Marshal(out)
}

// ToJSON renders the error for verbose output.
func (e *PromptError) ToJSON() string {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"code": %q, "message": %q}`, e.Code, e.Message)
	}
	return string(data)
}

// New creates a new PromptError
func New(code ErrorCode, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PromptError
func Wrap(err error, code ErrorCode, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As finds the outermost PromptError in err's chain.
func As(err error) (*PromptError, bool) {
	var promptErr *PromptError
	if stderrors.As(err, &promptErr) {
		return promptErr, true
	}
	return nil, false
}

// Is reports whether err's chain carries the given code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost PromptError in err's chain, or ""
// when there is none.
func GetCode(err error) ErrorCode {
	if promptErr, ok := As(err); ok {
		return promptErr.Code
	}
	return ""
}
