package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Query produced an error (unknown view, bad filter value)
	ExitCommandError = 2 // Command error (unreadable file, invalid flags)
)

// ExitError represents an error with a specific exit code.
// Commands return it so main can exit with something meaningful.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
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

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output (defaults to Writer)
}

// Response is the standard JSON envelope for CLI output.
type Response struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  string      `json:"error,omitempty"` // error message
}

// JSON reports whether the formatter is in JSON mode. Text-mode
// commands render their own lines; JSON-mode commands hand the payload
// to Success.
func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

// Success emits a successful payload in the JSON envelope.
func (f *OutputFormatter) Success(data interface{}) error {
	return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
}

// Fail emits an error in the configured format.
func (f *OutputFormatter) Fail(message string) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: message})
	}
	_, err := fmt.Fprintf(f.errWriter(), "Error: %s\n", message)
	return err
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
