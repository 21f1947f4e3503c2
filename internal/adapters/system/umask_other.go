// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !unix

package system

import (
	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/sirupsen/logrus"
)

// ProcessMask keeps the mask in memory where the platform has no umask.
type ProcessMask struct {
	value mask.Mask
}

// NewProcessMask returns a store starting from the usual default of 0022.
func NewProcessMask() *ProcessMask {
	return &ProcessMask{value: 0o022}
}

// Load returns the stored mask.
func (p *ProcessMask) Load() mask.Mask {
	return p.value
}

// Commit stores m. It has no effect on files created by the process.
func (p *ProcessMask) Commit(m mask.Mask) {
	logrus.Warnf("file mode creation masks are not supported on this platform; %s has no effect", m)
	p.value = m
}
