// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build unix

package system

import (
	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ProcessMask is the mask.Store backed by the umask of the running process.
type ProcessMask struct {
	statusPath string
}

// NewProcessMask returns the store for the current process.
func NewProcessMask() *ProcessMask {
	return &ProcessMask{statusPath: procStatusPath}
}

// Load returns the active mask. umask(2) can only be read by replacing the
// value, so the old value is put back straight away when /proc is not
// available.
func (p *ProcessMask) Load() mask.Mask {
	if p.statusPath != "" {
		m, err := readStatusUmask(p.statusPath)
		if err == nil {
			return m
		}

		logrus.Debugf("falling back to umask(2) read: %v", err)
	}

	old := unix.Umask(0)
	unix.Umask(old)

	return mask.Mask(old) & mask.AllBits
}

// Commit installs m as the process mask.
func (p *ProcessMask) Commit(m mask.Mask) {
	old := unix.Umask(int(m & mask.AllBits))
	logrus.Debugf("umask changed from %s to %s", mask.Mask(old)&mask.AllBits, m)
}
