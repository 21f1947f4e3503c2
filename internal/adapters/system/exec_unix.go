// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build unix

package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/janderssonse/umaskexec/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// CommandExecutor implements domain.Executor with execve(2).
type CommandExecutor struct {
	lookPath func(file string) (string, error)
	execve   func(argv0 string, argv []string, envv []string) error
}

// NewCommandExecutor returns an executor that replaces the running process.
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{
		lookPath: exec.LookPath,
		execve:   unix.Exec,
	}
}

// Exec resolves name like execvp(3) and replaces the process with it.
// It only returns on failure.
func (e *CommandExecutor) Exec(name string, argv []string, env []string) error {
	path, err := e.lookPath(name)
	if errors.Is(err, exec.ErrDot) {
		// execvp runs programs found through a relative PATH entry.
		err = nil
	}

	if err != nil {
		return classifyExecError(err)
	}

	logrus.Debugf("executing %s as %q", path, argv)

	if err := e.execve(path, argv, env); err != nil {
		return classifyExecError(fmt.Errorf("%s: %w", path, err))
	}

	return nil
}

func classifyExecError(err error) error {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", domain.ErrCommandNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", domain.ErrNotExecutable, err)
	default:
		return err
	}
}
