// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/jeranaias/pdm-tui/internal/explorer"
	"github.com/jeranaias/pdm-tui/internal/nodeconf"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// =============================================================================
// LIST COMPONENT - scrolled rows with one highlighted
// =============================================================================

// RowStyle selects how an unselected row is drawn.
type RowStyle int

const (
	RowPlain RowStyle = iota
	RowDir
	RowMuted
)

// Row is one plain-text list row.
type Row struct {
	Text  string
	Style RowStyle
}

// List is a window of Height rows starting at Offset.
type List struct {
	Rows     []Row
	Selected int
	Offset   int
	Height   int
	Width    int
}

// Lines renders the visible rows, each exactly Width cells.
func (l List) Lines(theme *styles.Theme) []string {
	if l.Height <= 0 || l.Width <= 0 {
		return nil
	}
	start := max(l.Offset, 0)
	end := min(start+l.Height, len(l.Rows))

	lines := make([]string, 0, l.Height)
	for i := start; i < end; i++ {
		text := util.PadWidth(l.Rows[i].Text, l.Width)
		if i == l.Selected {
			lines = append(lines, theme.ItemSelected.Render(text))
			continue
		}
		switch l.Rows[i].Style {
		case RowDir:
			lines = append(lines, theme.DirName.Render(text))
		case RowMuted:
			lines = append(lines, theme.ItemMuted.Render(text))
		default:
			lines = append(lines, theme.Item.Render(text))
		}
	}
	return lines
}

// FileRows builds explorer rows with directory and file icons.
func FileRows(entries []explorer.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		switch {
		case e.IsParent:
			rows[i] = Row{Text: styles.Icons.Parent + " " + e.Name, Style: RowDir}
		case e.IsDir:
			rows[i] = Row{Text: styles.Icons.Dir + " " + e.Name + "/", Style: RowDir}
		default:
			rows[i] = Row{Text: styles.Icons.File + " " + e.Name}
		}
	}
	return rows
}

// OptionRows builds option rows: enabled marker, key, optional kind badge,
// value. Disabled entries are muted.
func OptionRows(entries []*nodeconf.Entry, showKind bool) []Row {
	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, util.StringWidth(e.Key))
	}

	rows := make([]Row, len(entries))
	for i, e := range entries {
		mark := styles.Icons.Disabled
		style := RowMuted
		if e.Enabled {
			mark = styles.Icons.Enabled
			style = RowPlain
		}
		text := mark + " " + util.PadWidth(e.Key, keyWidth)
		if showKind {
			text += fmt.Sprintf(" %-9s", "<"+e.Kind().String()+">")
		}
		text += " " + e.Value
		rows[i] = Row{Text: text, Style: style}
	}
	return rows
}
