// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain holds the ports and error types shared by the CLI and its
// operating system adapters.
package domain

// Executor defines how the target command is started.
// Implemented by the system adapter; mocked in tests.
type Executor interface {
	// Exec looks name up like execvp and replaces the current process with
	// it, passing argv and env through unchanged. It only returns on failure.
	Exec(name string, argv []string, env []string) error
}
