// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package mask

import "errors"

// Store reads and installs the active file mode creation mask.
type Store interface {
	// Load returns the active mask without changing it.
	Load() Mask

	// Commit installs m as the active mask.
	Commit(m Mask)
}

// Parse evaluates expr as an octal mask, or failing that as a symbolic
// expression applied to current(). current is only called when the
// symbolic form is attempted.
func Parse(expr string, current func() Mask) (Mask, error) {
	if expr == "" {
		return 0, &ExpressionError{Expression: expr, Cause: ErrEmptyExpression}
	}

	m, octalErr := ParseOctal(expr)
	if octalErr == nil {
		return m, nil
	}

	m, symbolicErr := ParseSymbolic(expr, current())
	if symbolicErr == nil {
		return m, nil
	}

	return 0, &ExpressionError{
		Expression: expr,
		Cause:      errors.Join(octalErr, symbolicErr),
	}
}

// Apply evaluates expr against store and commits the result exactly once.
// A rejected expression leaves store untouched.
func Apply(expr string, store Store) (Mask, error) {
	m, err := Parse(expr, store.Load)
	if err != nil {
		return 0, err
	}

	store.Commit(m)

	return m, nil
}

// Validate reports whether expr would be accepted by Parse.
func Validate(expr string) error {
	_, err := Parse(expr, func() Mask { return 0 })

	return err
}
