package errors

import (
	"errors"
	"fmt"
)

// Exit codes for retrofit
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitNoRepository     = 2
	ExitDirtyWorktree    = 3
	ExitMigrationFailed  = 4
	ExitValidationFailed = 5
	ExitConfigError      = 6
	ExitGitError         = 7
	ExitAborted          = 8
)

// RetrofitError is the base error type for retrofit
type RetrofitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RetrofitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RetrofitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *RetrofitError) ExitCode() int {
	return e.Code
}

// New creates a new RetrofitError
func New(code int, message string) *RetrofitError {
	return &RetrofitError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RetrofitError
func Wrap(code int, message string, cause error) *RetrofitError {
	return &RetrofitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// NoRepository returns an error for a target without version control.
func NoRepository(path string) *RetrofitError {
	return New(ExitNoRepository, fmt.Sprintf("no git repository at %s", path))
}

// DirtyWorktree returns an error for a target with uncommitted changes.
func DirtyWorktree(path string) *RetrofitError {
	return New(ExitDirtyWorktree, fmt.Sprintf("uncommitted changes in %s", path))
}

// MigrationFailed returns an error for a failed migration step.
func MigrationFailed(step string, cause error) *RetrofitError {
	return Wrap(ExitMigrationFailed, fmt.Sprintf("migration step %s failed", step), cause)
}

// ValidationFailed returns an error for a failed installation check.
func ValidationFailed(count int) *RetrofitError {
	return New(ExitValidationFailed, fmt.Sprintf("validation reported %d error(s)", count))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *RetrofitError {
	return Wrap(ExitConfigError, message, cause)
}

// GitError returns an error for git operations
func GitError(message string, cause error) *RetrofitError {
	return Wrap(ExitGitError, message, cause)
}

// Aborted returns an error for an operator-declined confirmation.
func Aborted(what string) *RetrofitError {
	return New(ExitAborted, fmt.Sprintf("aborted: %s", what))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var rerr *RetrofitError
	if errors.As(err, &rerr) {
		return rerr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
