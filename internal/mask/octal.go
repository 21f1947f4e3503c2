// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package mask

import "fmt"

const (
	octalBase      = 3 // bits per octal digit
	maxOctalDigits = 4
)

// ParseOctal parses one to four octal digits, most significant first.
// The result replaces the mask outright; no current mask is involved.
func ParseOctal(s string) (Mask, error) {
	if s == "" {
		return 0, ErrEmptyExpression
	}

	if len(s) > maxOctalDigits {
		return 0, fmt.Errorf("%w: %d digits", ErrOctalOverflow, len(s))
	}

	var value Mask

	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '7' {
			return 0, newSyntaxError(s, i, "", ErrInvalidOctalDigit)
		}

		value = value<<octalBase | Mask(c-'0')
		if value > AllBits {
			return 0, fmt.Errorf("%w: %s", ErrOctalOverflow, s)
		}
	}

	return value, nil
}
