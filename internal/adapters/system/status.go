// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package system adapts the process file mode creation mask and execve(2)
// to the mask.Store and domain.Executor ports.
package system

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/janderssonse/umaskexec/internal/mask"
)

// procStatusPath exposes an "Umask:" line on Linux 4.7 and later.
const procStatusPath = "/proc/self/status"

var errNoUmaskField = errors.New("no Umask field")

// readStatusUmask reads the mask from a /proc/<pid>/status file without
// changing it.
func readStatusUmask(path string) (mask.Mask, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		value, found := strings.CutPrefix(scanner.Text(), "Umask:")
		if !found {
			continue
		}

		m, err := mask.ParseOctal(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("parsing %s: %w", path, err)
		}

		return m, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	return 0, fmt.Errorf("%s: %w", path, errNoUmaskField)
}
