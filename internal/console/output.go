// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console presents masks and errors on the terminal.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/janderssonse/umaskexec/internal/domain"
	"golang.org/x/term"
)

// Format selects how a mask is printed.
type Format int

const (
	// OctalFormat prints "0022".
	OctalFormat Format = iota
	// SymbolicFormat prints "u=rwx,g=rx,o=rx".
	SymbolicFormat
	// JSONFormat prints a MaskResult object.
	JSONFormat
	// ExplainFormat prints a permission table.
	ExplainFormat
)

// Output implements domain.OutputPort for the terminal.
type Output struct {
	out    io.Writer
	errOut io.Writer
	format Format
	prog   string
}

var _ domain.OutputPort = (*Output)(nil)

// NewOutput creates an output writing results to out and errors to errOut,
// prefixing errors with prog.
func NewOutput(out, errOut io.Writer, format Format, prog string) *Output {
	return &Output{
		out:    out,
		errOut: errOut,
		format: format,
		prog:   prog,
	}
}

// Format returns the configured format.
func (o *Output) Format() Format {
	return o.format
}

// Mask writes result in the configured format.
func (o *Output) Mask(result domain.MaskResult) error {
	var err error

	switch o.format {
	case SymbolicFormat:
		_, err = fmt.Fprintln(o.out, result.Symbolic)
	case JSONFormat:
		err = json.NewEncoder(o.out).Encode(result)
	case ExplainFormat:
		_, err = fmt.Fprintln(o.out, RenderExplain(result, o.out))
	default:
		_, err = fmt.Fprintln(o.out, result.Octal)
	}

	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}

// Error writes message to the error stream. In JSON mode an error object is
// also written to the result stream.
func (o *Output) Error(message string) error {
	if o.format == JSONFormat {
		if err := json.NewEncoder(o.out).Encode(map[string]string{"error": message}); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	if o.prog != "" {
		message = o.prog + ": " + message
	}

	if _, err := fmt.Fprintln(o.errOut, message); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}

// ColorEnabled reports whether w is a terminal that accepts colour,
// following no-color.org.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}
