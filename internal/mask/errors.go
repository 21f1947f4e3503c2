// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package mask

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	ErrEmptyExpression       = errors.New("empty mask expression")
	ErrInvalidOctalDigit     = errors.New("invalid octal digit")
	ErrOctalOverflow         = errors.New("octal mask exceeds 0777")
	ErrInvalidSymbolicSyntax = errors.New("invalid symbolic mask")
	ErrInvalidExpression     = errors.New("invalid mask expression")
)

// SyntaxError reports an unexpected character in a mask expression.
type SyntaxError struct {
	Offset   int    // byte offset into the expression
	Found    string // quoted character or "end of input"
	Expected string
	Err      error
}

func newSyntaxError(input string, offset int, expected string, err error) *SyntaxError {
	found := "end of input"
	if offset < len(input) {
		found = fmt.Sprintf("%q", input[offset])
	}

	return &SyntaxError{
		Offset:   offset,
		Found:    found,
		Expected: expected,
		Err:      err,
	}
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%v: unexpected %s at offset %d", e.Err, e.Found, e.Offset)
	}

	return fmt.Sprintf("%v: unexpected %s at offset %d, expected %s", e.Err, e.Found, e.Offset, e.Expected)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ExpressionError is returned when an expression is neither a valid octal
// nor a valid symbolic mask. Callers only see ErrInvalidExpression through
// errors.Is; Cause keeps both rejections for diagnostics.
type ExpressionError struct {
	Expression string
	Cause      error
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidExpression, e.Expression)
}

func (e *ExpressionError) Unwrap() error {
	return ErrInvalidExpression
}
