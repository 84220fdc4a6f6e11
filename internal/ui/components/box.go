// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pdm-tui/internal/ui/styles"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// =============================================================================
// BOX COMPONENT - bordered region with a title in the top edge
// =============================================================================

// Box is a bordered region. Lines are the pre-rendered interior rows; extra
// rows are dropped and missing rows are blank.
type Box struct {
	Title   string
	Width   int
	Height  int
	Focused bool
	Lines   []string
}

// InnerWidth returns the number of interior columns.
func (b Box) InnerWidth() int {
	return max(b.Width-2, 0)
}

// InnerHeight returns the number of interior rows.
func (b Box) InnerHeight() int {
	return max(b.Height-2, 0)
}

// View renders the box. Boxes smaller than 2x2 render as nothing.
func (b Box) View(theme *styles.Theme) string {
	if b.Width < 2 || b.Height < 2 {
		return ""
	}

	border := theme.BorderBlurred
	if b.Focused {
		border = theme.BorderFocused
	}
	inner := b.InnerWidth()
	bc := styles.BoxChars

	rows := make([]string, 0, b.Height)
	rows = append(rows, b.topEdge(theme, border, inner))

	side := border.Render(bc.Vertical)
	for i := 0; i < b.InnerHeight(); i++ {
		var line string
		if i < len(b.Lines) {
			line = b.Lines[i]
		}
		rows = append(rows, side+FitLine(line, inner)+side)
	}

	rows = append(rows, border.Render(bc.BottomLeft+strings.Repeat(bc.Horizontal, inner)+bc.BottomRight))
	return strings.Join(rows, "\n")
}

func (b Box) topEdge(theme *styles.Theme, border lipgloss.Style, inner int) string {
	bc := styles.BoxChars
	title := ""
	if b.Title != "" && inner >= 3 {
		title = util.TruncateWidth(" "+b.Title+" ", inner-1)
	}
	tw := util.StringWidth(title)
	if tw == 0 {
		return border.Render(bc.TopLeft + strings.Repeat(bc.Horizontal, inner) + bc.TopRight)
	}
	return border.Render(bc.TopLeft+bc.Horizontal) +
		theme.BoxTitle.Render(title) +
		border.Render(strings.Repeat(bc.Horizontal, inner-1-tw)+bc.TopRight)
}

// FitLine clips or pads a possibly styled line to exactly width cells.
func FitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(line)
	if w > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
		w = lipgloss.Width(line)
	}
	if w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
