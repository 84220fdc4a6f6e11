// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/pdm-tui/internal/nodeconf"
)

// TabPadding is the number of cells a tab adds around its label: one space
// on each side and a separator.
const TabPadding = 3

// TabWidth returns the rendered width of a tab labelled label.
func TabWidth(label string) int {
	return runewidth.StringWidth(label) + TabPadding
}

// Rect is a rendered region in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) falls inside r, border included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// InteriorRow returns the row index of (x, y) inside r's one-cell border.
func (r Rect) InteriorRow(x, y int) (int, bool) {
	if x <= r.X || x >= r.X+r.Width-1 || y <= r.Y || y >= r.Y+r.Height-1 {
		return 0, false
	}
	return y - r.Y - 1, true
}

// Layout is where the last frame drew each interactive region, with the
// scroll offsets it used. A zero Rect is never hit.
type Layout struct {
	MainButton   Rect
	FileList     Rect
	FileOffset   int
	Tabs         Rect
	OptionList   Rect
	OptionOffset int
}

// TabAt returns the tab containing column x when the strip's first tab starts
// at column start.
func TabAt(labels []string, start, x int) (int, bool) {
	pos := start
	for i, label := range labels {
		w := TabWidth(label)
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w
	}
	return 0, false
}

// Press translates a pointer press at (x, y) into selection changes. Lists
// only move the selection; the main button performs the Main confirm. Every
// press is input, so the notice is cleared even when nothing is hit.
// It reports whether anything was hit.
func (m *Machine) Press(x, y int, l Layout) bool {
	m.clearNotice()

	switch m.screen {
	case ScreenMain:
		if l.MainButton.Contains(x, y) {
			m.Handle(Event{Action: ActionConfirm})
			return true
		}

	case ScreenFileExplorer:
		if row, ok := l.FileList.InteriorRow(x, y); ok {
			return m.browser.Select(row + l.FileOffset)
		}

	case ScreenEditing:
		if _, ok := l.Tabs.InteriorRow(x, y); ok {
			if i, ok := TabAt(nodeconf.SectionNames(m.sections), l.Tabs.X+1, x); ok {
				return m.SelectSection(i)
			}
		}
		if row, ok := l.OptionList.InteriorRow(x, y); ok {
			return m.SelectItem(row + l.OptionOffset)
		}
	}
	return false
}

// Follow returns the scroll offset that keeps selected visible in a list
// showing visible rows, moving offset as little as possible.
func Follow(selected, offset, visible int) int {
	if visible <= 0 {
		return 0
	}
	if selected < offset {
		return selected
	}
	if selected >= offset+visible {
		return selected - visible + 1
	}
	if offset < 0 {
		return 0
	}
	return offset
}
