package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrKeygen    = "KEYGEN"    // ssh-keygen subprocess or key filesystem failure
	ErrAgent     = "AGENT"     // ssh-add subprocess failure (agent not running, etc.)
	ErrAccount   = "ACCOUNT"   // lookup against the in-memory registry failed
	ErrGitConfig = "GITCONFIG" // writing/appending a git config file failed
	ErrSSHConfig = "SSHCONFIG" // writing/appending ~/.ssh/config failed
	ErrEnv       = "ENV"       // home directory could not be resolved
	ErrConfig    = "CONFIG"    // .gitid.yaml missing or invalid
)

// Error represents a structured error with code, message, suggestion, and optional cause:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a specific code, message, and suggestion.
func Wrap(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with formatted output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var gitidErr *Error
	if errors.As(err, &gitidErr) {
		return gitidErr.Code == code
	}
	return false
}
