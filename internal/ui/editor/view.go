// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/nodeconf"
	"github.com/jeranaias/pdm-tui/internal/ui/components"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// View renders the current frame.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.frame.small {
		return components.FitLine(fmt.Sprintf(" Terminal too small (need %dx%d)", MinWidth, MinHeight), m.width)
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.headerView())

	body := newCanvas(m.frame.body)
	switch m.machine.Screen() {
	case nav.ScreenMain:
		m.mainView(body)
	case nav.ScreenFileExplorer:
		m.explorerView(body)
	case nav.ScreenEditing, nav.ScreenEditingValue:
		m.editingView(body)
	}
	rows = append(rows, body.lines...)

	rows = append(rows,
		components.Notice(m.machine.Notice(), m.machine.NoticeFailed(), m.width),
		components.HelpLine(m.theme, m.help, m.keys.HelpFor(m.machine.Screen()), m.width),
	)
	return strings.Join(rows, "\n")
}

func (m Model) headerView() string {
	h := components.NewHeader()
	h.Width = m.width
	if doc := m.machine.Document(); doc != nil {
		h.Path = components.ShortPath(doc.Path(), m.width/2)
		h.Dirty = doc.Dirty()
		h.Status = m.machine.Status()
		h.HasStatus = true
	}
	return h.View(m.theme)
}

// =============================================================================
// SCREENS
// =============================================================================

func (m Model) mainView(c *canvas) {
	loaded := "No config loaded"
	if doc := m.machine.Document(); doc != nil {
		loaded = "Loaded: " + doc.Path()
	}

	info := components.Box{
		Title:  "Home",
		Width:  m.frame.info.Width,
		Height: m.frame.info.Height,
		Lines: []string{
			"",
			"  " + m.theme.Value.Render(util.TruncateWidth(loaded, m.frame.info.Width-4)),
			"",
			"  " + m.theme.Description.Render("Pick a bitcoin.conf to view and edit its options."),
		},
	}
	c.draw(m.frame.info, info.View(m.theme))

	button := components.Box{
		Width:   m.frame.layout.MainButton.Width,
		Height:  m.frame.layout.MainButton.Height,
		Focused: true,
		Lines:   []string{m.theme.Button.Render(mainButton)},
	}
	c.draw(m.frame.layout.MainButton, button.View(m.theme))
}

func (m Model) explorerView(c *canvas) {
	b := m.machine.Browser()
	r := m.frame.layout.FileList
	list := components.List{
		Rows:     components.FileRows(b.Entries()),
		Selected: b.Cursor(),
		Offset:   m.frame.layout.FileOffset,
		Height:   m.frame.visible,
		Width:    r.Width - 2,
	}

	lines := list.Lines(m.theme)
	if len(b.Entries()) == 0 {
		lines = []string{m.theme.ItemMuted.Render("(empty directory)")}
	}

	box := components.Box{
		Title:   components.ShortPath(b.Dir(), r.Width-6),
		Width:   r.Width,
		Height:  r.Height,
		Focused: true,
		Lines:   lines,
	}
	c.draw(r, box.View(m.theme))
}

func (m Model) editingView(c *canvas) {
	sections := m.machine.Sections()
	editing := m.machine.Screen() == nav.ScreenEditingValue

	tr := m.frame.layout.Tabs
	tabs := components.Box{
		Width:  tr.Width,
		Height: tr.Height,
		Lines:  []string{components.Tabs(m.theme, nodeconf.SectionNames(sections), m.machine.SectionIndex(), tr.Width-2)},
	}
	c.draw(tr, tabs.View(m.theme))

	lr := m.frame.layout.OptionList
	sec, _ := m.machine.CurrentSection()
	list := components.List{
		Rows:     components.OptionRows(sec.Entries, m.theme.GetLayoutMode() != styles.LayoutNarrow),
		Selected: m.machine.ItemIndex(),
		Offset:   m.frame.layout.OptionOffset,
		Height:   m.frame.visible,
		Width:    lr.Width - 2,
	}
	title := sec.Name
	if n := len(sec.Entries); n > 0 {
		title = fmt.Sprintf("%s (%d/%d)", sec.Name, m.machine.ItemIndex()+1, n)
	}
	options := components.Box{
		Title:   title,
		Width:   lr.Width,
		Height:  lr.Height,
		Focused: !editing,
		Lines:   list.Lines(m.theme),
	}
	c.draw(lr, options.View(m.theme))

	c.draw(m.frame.detail, m.detailBox(editing).View(m.theme))
}

// detailBox shows the addressed entry's description, or the edit buffer
// while a value is being edited.
func (m Model) detailBox(editing bool) components.Box {
	r := m.frame.detail
	box := components.Box{Width: r.Width, Height: r.Height, Title: "Description"}

	e, ok := m.machine.CurrentEntry()
	if !ok {
		return box
	}

	if editing {
		box.Title = "Edit " + e.Key
		box.Focused = true
		// Keep the end of a long buffer visible next to the cursor.
		text := m.machine.Buffer()
		room := r.Width - 2 - 3
		for util.StringWidth(text) > room && text != "" {
			_, size := utf8.DecodeRuneInString(text)
			text = text[size:]
		}
		box.Lines = []string{
			" " + m.theme.EditBuffer.Render(text) + m.theme.EditCursor.Render(styles.Icons.Cursor),
		}
		return box
	}

	desc := e.Description()
	if e.IsCustom() {
		desc = "Custom option, not in the catalog"
	} else {
		desc = fmt.Sprintf("%s (default: %q)", desc, e.Default())
	}
	box.Lines = []string{" " + m.theme.Description.Render(util.TruncateWidth(desc, r.Width-3))}
	return box
}

// =============================================================================
// CANVAS
// =============================================================================

// canvas is the body as full-width lines that rendered blocks are placed on.
type canvas struct {
	area  nav.Rect
	lines []string
}

func newCanvas(area nav.Rect) *canvas {
	lines := make([]string, area.Height)
	blank := strings.Repeat(" ", area.Width)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{area: area, lines: lines}
}

// draw places block at r. Blocks start at the left edge, so each line is
// padded out to the full width.
func (c *canvas) draw(r nav.Rect, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := r.Y - c.area.Y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = components.FitLine(line, c.area.Width)
	}
}
