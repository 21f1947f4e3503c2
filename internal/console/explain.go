// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/janderssonse/umaskexec/internal/domain"
	"github.com/janderssonse/umaskexec/internal/mask"
)

// RenderExplain renders result as a title line, a class by permission table
// and the modes new files and directories get.
func RenderExplain(result domain.MaskResult, w io.Writer) string {
	styles := NewStyles(w)

	headers := []string{"class"}
	for _, perm := range mask.Perms {
		headers = append(headers, perm.Name)
	}

	rows := make([][]string, 0, len(mask.Classes))

	for _, class := range mask.Classes {
		row := []string{class.Name}

		for _, perm := range mask.Perms {
			if result.Mask.Denies(class, perm) {
				row = append(row, "denied")
			} else {
				row = append(row, "allowed")
			}
		}

		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col == 0:
				return styles.Label
			case rows[row][col] == "denied":
				return styles.Denied
			default:
				return styles.Allowed
			}
		})

	var b strings.Builder

	b.WriteString(styles.Title.Render(result.Octal + "  " + result.Symbolic))
	b.WriteByte('\n')
	b.WriteString(tbl.Render())
	b.WriteByte('\n')
	b.WriteString(styles.Muted.Render("new files " + result.FileMode + ", new directories " + result.DirMode))

	return b.String()
}
