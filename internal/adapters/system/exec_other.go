// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !unix

package system

import (
	"errors"
	"fmt"
)

// CommandExecutor reports that the process image cannot be replaced.
type CommandExecutor struct{}

// NewCommandExecutor returns an executor for platforms without execve(2).
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

// Exec always fails on this platform.
func (e *CommandExecutor) Exec(name string, _ []string, _ []string) error {
	return fmt.Errorf("%s: %w", name, errors.ErrUnsupported)
}
