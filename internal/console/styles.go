// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains the styles used by the explain table.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Allowed lipgloss.Style
	Denied  lipgloss.Style
	Border  lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates styles rendering to w. Colour is dropped unless w is a
// colour capable terminal.
func NewStyles(w io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if !ColorEnabled(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	// Tokyo Night palette
	primary := lipgloss.Color("#7aa2f7")
	success := lipgloss.Color("#9ece6a")
	errorColor := lipgloss.Color("#f7768e")
	muted := lipgloss.Color("#565f89")

	cell := renderer.NewStyle().Padding(0, 1)

	return &Styles{
		Title:   renderer.NewStyle().Bold(true).Foreground(primary),
		Header:  cell.Bold(true).Foreground(primary),
		Label:   cell.Bold(true),
		Allowed: cell.Foreground(success),
		Denied:  cell.Foreground(errorColor),
		Border:  renderer.NewStyle().Foreground(muted),
		Muted:   renderer.NewStyle().Foreground(muted),
	}
}
