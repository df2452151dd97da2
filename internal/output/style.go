// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/tfctl/toolbox/internal/config"
)

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// summaryStyle returns the style used for the summary block.
func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(titleColor())
}

// titleColor returns colors.title from the config when present. Otherwise it
// picks a default based on the terminal background so the summary stays
// readable on light and dark themes.
func titleColor() color.Color {
	if c, err := config.GetString("colors.title"); err == nil {
		return lipgloss.Color(c)
	}

	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		return lipgloss.Color("#f6be00")
	}
	return lipgloss.Color("#b08800")
}
