// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"io/fs"

	"github.com/janderssonse/umaskexec/internal/mask"
)

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Mask outputs a mask in the configured format.
	Mask(result MaskResult) error

	// Error outputs an error message.
	Error(message string) error
}

// MaskResult describes a mask and its effect on newly created files.
type MaskResult struct {
	Mask     mask.Mask `json:"-"`
	Octal    string    `json:"octal"`
	Symbolic string    `json:"symbolic"`
	FileMode string    `json:"file_mode"`
	DirMode  string    `json:"dir_mode"`
}

// NewMaskResult builds the presentation of m. Files are assumed to be
// requested with 0666 and directories with 0777.
func NewMaskResult(m mask.Mask) MaskResult {
	return MaskResult{
		Mask:     m,
		Octal:    m.Octal(),
		Symbolic: m.Symbolic(),
		FileMode: m.Restrict(0o666).String(),
		DirMode:  m.Restrict(fs.ModeDir | fs.ModePerm).String(),
	}
}
