// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pdm-tui/internal/probe"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - one-line title bar
// =============================================================================

// Header is the title bar: program name, open file, unsaved marker and the
// daemon status of the open file.
type Header struct {
	Title     string
	Path      string
	Dirty     bool
	Status    probe.Result
	HasStatus bool
	Width     int
}

// NewHeader creates a header with the default title.
func NewHeader() Header {
	return Header{Title: "pdm", Width: 80}
}

// StatusText returns the daemon status as plain text.
func StatusText(r probe.Result) string {
	switch r.State {
	case probe.Running:
		return fmt.Sprintf("bitcoind: running (pid %d)", r.PID)
	case probe.Stopped:
		return "bitcoind: stopped"
	default:
		return "bitcoind: unknown"
	}
}

// View renders the header as exactly Width cells.
func (h Header) View(theme *styles.Theme) string {
	if h.Width <= 0 {
		return ""
	}

	left := " " + theme.HeaderTitle.Render(h.Title)
	if h.Path != "" {
		left += " " + theme.HeaderPath.Render(h.Path)
		if h.Dirty {
			left += theme.DirtyMark.Render(" " + styles.Icons.Dirty)
		}
	}

	right := ""
	if h.HasStatus {
		right = h.statusStyle(theme).Render(StatusText(h.Status)) + " "
	}

	// The status wins when space runs out; the path is cut first.
	rw := lipgloss.Width(right)
	if rw >= h.Width {
		right = ""
		rw = 0
	}
	left = FitLine(left, h.Width-rw)
	return theme.Header.Render(left + right)
}

func (h Header) statusStyle(theme *styles.Theme) lipgloss.Style {
	switch h.Status.State {
	case probe.Running:
		return theme.StatusRunning
	case probe.Stopped:
		return theme.StatusStopped
	default:
		return theme.StatusUnknown
	}
}

// ShortPath abbreviates path to fit width columns, keeping its tail.
func ShortPath(path string, width int) string {
	if util.StringWidth(path) <= width {
		return path
	}
	if width <= 1 {
		return util.TruncateWidth(path, width)
	}
	runes := []rune(path)
	for i := range runes {
		tail := string(runes[i:])
		if util.StringWidth(tail)+util.StringWidth(util.Ellipsis) <= width {
			return util.Ellipsis + tail
		}
	}
	return util.Ellipsis
}
