package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // all requested days ran clean
	ExitFailure      = 1 // answer regression under --check-only, rejected import
	ExitCommandError = 2 // invalid day selection, missing input, database error
)

// Error codes carried in JSON error envelopes.
const (
	ErrCodeRunFailed = "E001" // a day failed to load or run
	ErrCodeMismatch  = "E002" // an answer differs from the recorded one
	ErrCodeImport    = "E003" // answers import rejected
)

// ExitError carries the process exit code a command failure maps to.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an ExitError with no underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code to an underlying error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error to a process exit code. Errors that carry
// no explicit code exit with ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes the JSON envelope commands emit under
// --format json. Text output is rendered by each command directly,
// so the formatter only ever carries the envelope.
type OutputFormatter struct {
	Writer io.Writer
}

// CLIResponse is the envelope shared by every command's JSON output.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError describes a failure inside an error envelope.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes an "ok" envelope around data.
func (f *OutputFormatter) Success(data interface{}) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "ok",
		Data:   data,
	})
}

// Error writes an error envelope. Details carries structured context,
// such as the per-day results that produced the failure. The command
// still returns an ExitError; the envelope is for machine consumers,
// the exit code for the shell.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
