// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"fmt"
	"strings"

	"github.com/janderssonse/umaskexec/internal/domain"
)

// valueOptions are the options that consume the following argument.
var valueOptions = map[string]bool{
	"-c":          true,
	"--config":    true,
	"--log-level": true,
}

// splitArgs separates the leading options from the operands (mask, command
// and its arguments). Options stop at the first argument not starting with
// '-' or at "--", which is dropped. Everything after that point is returned
// untouched so that the command's own flags are never interpreted.
func splitArgs(args []string) (options, operands []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return options, args[i+1:], nil
		case arg == "-":
			return nil, nil, domain.NewExitError(domain.ExitGeneralError, "bad option: -", domain.ErrBadOption)
		case !strings.HasPrefix(arg, "-"):
			return options, args[i:], nil
		}

		options = append(options, arg)

		if takesValue(arg) && i+1 < len(args) {
			i++
			options = append(options, args[i])
		}
	}

	return options, nil, nil
}

// takesValue reports whether arg is an option whose value is the next
// argument, including short clusters such as "-vc".
func takesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	if valueOptions[arg] {
		return true
	}

	return !strings.HasPrefix(arg, "--") && strings.HasSuffix(arg, "c")
}

// commandLine renders argv for log messages.
func commandLine(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\$") {
			quoted[i] = fmt.Sprintf("%q", arg)
		} else {
			quoted[i] = arg
		}
	}

	return strings.Join(quoted, " ")
}
