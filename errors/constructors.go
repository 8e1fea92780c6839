package errors

import (
	"fmt"
)

// UnsupportedOption creates a usage error for a flag the CLI does not know
func UnsupportedOption(option string) *PromptError {
	return New(ErrCodeUsage, fmt.Sprintf("Error unsupported option: %q", option)).
		WithDetail("option", option)
}

// MissingMode creates the usage error reported when neither left nor right was requested
func MissingMode() *PromptError {
	return New(ErrCodeUsage, "ERROR! incorrect usage: left or right missing")
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PromptError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PromptError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// OutputWrite wraps a failure to write the rendered prompt
func OutputWrite(err error) *PromptError {
	return Wrap(err, ErrCodeOutputWrite, "failed to write prompt output")
}
