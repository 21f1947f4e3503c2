// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. 126 and 127 follow the shell convention for commands that
// cannot be run.
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1 // bad mask, bad option, unwritable output
	ExitConfigError   = 3
	ExitCannotExecute = 126
	ExitNotFound      = 127
)

// Common domain errors.
var (
	ErrBadOption       = errors.New("bad option")
	ErrBadUmask        = errors.New("bad umask")
	ErrCommandNotFound = errors.New("command not found")
	ErrNotExecutable   = errors.New("permission denied")
)

// ExitError carries the exit code a failure should terminate the process with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
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

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// GetErrorInfo maps a command execution error to user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	switch {
	case err == nil:
		return ErrorInfo{}
	case errors.Is(err, ErrCommandNotFound):
		return ErrorInfo{
			Message:     "command not found",
			Suggestions: []string{"Check the command name and your PATH"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrNotExecutable):
		return ErrorInfo{
			Message:     "permission denied",
			Suggestions: []string{"Check that the file is executable", "Check the permissions of its directory"},
			ShowDetails: verbose,
		}
	default:
		return ErrorInfo{
			Message:     "cannot execute",
			Suggestions: []string{"Run with --verbose for more details"},
			ShowDetails: verbose,
		}
	}
}

// FormatErrorMessage formats a command execution error for display.
func FormatErrorMessage(err error, command string, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("error executing command: ")
	result.WriteString(command)
	result.WriteString(": ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	if len(info.Suggestions) > 0 && !verbose {
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	} else if len(info.Suggestions) > 0 {
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}

// ExitCodeForExec returns the exit code for a failed command execution.
func ExitCodeForExec(err error) int {
	if errors.Is(err, ErrCommandNotFound) {
		return ExitNotFound
	}

	return ExitCannotExecute
}
