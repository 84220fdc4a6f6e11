// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pdm-tui/internal/explorer"
	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/nodeconf"
	"github.com/jeranaias/pdm-tui/internal/probe"
	"github.com/jeranaias/pdm-tui/internal/schema"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
)

func assertBlock(t *testing.T, view string, width, height int) {
	t.Helper()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, height)
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d: %q", i, line)
	}
}

// =============================================================================
// BOX
// =============================================================================

func TestBox_ExactSize(t *testing.T) {
	theme := styles.NewTheme()
	tests := []struct {
		name  string
		box   Box
		width int
	}{
		{"empty", Box{Width: 10, Height: 4}, 10},
		{"titled", Box{Title: "Sections", Width: 30, Height: 3}, 30},
		{"long title", Box{Title: strings.Repeat("t", 50), Width: 12, Height: 3}, 12},
		{"overflowing lines", Box{Width: 8, Height: 3, Lines: []string{"far too long for this box", "x", "dropped"}}, 8},
		{"styled line", Box{Width: 20, Height: 3, Lines: []string{theme.ItemSelected.Render("selected")}}, 20},
		{"wide runes", Box{Width: 9, Height: 3, Lines: []string{"日本語日本語"}}, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertBlock(t, tc.box.View(theme), tc.width, tc.box.Height)
		})
	}
}

func TestBox_TitleAndContent(t *testing.T) {
	theme := styles.NewTheme()
	view := Box{Title: "Files", Width: 20, Height: 4, Lines: []string{"bitcoin.conf"}}.View(theme)
	lines := strings.Split(stripStyles(view), "\n")

	assert.Contains(t, lines[0], "Files")
	assert.Contains(t, lines[1], "bitcoin.conf")
	assert.Equal(t, strings.Repeat(" ", 18), strings.Trim(lines[2], "|"), "missing rows render blank")
}

func TestBox_TooSmall(t *testing.T) {
	assert.Empty(t, Box{Width: 1, Height: 5}.View(styles.NewTheme()))
	assert.Empty(t, Box{Width: 5, Height: 1}.View(styles.NewTheme()))
}

func TestFitLine(t *testing.T) {
	assert.Equal(t, "ab   ", FitLine("ab", 5))
	assert.Equal(t, 3, lipgloss.Width(FitLine("abcdef", 3)))
	assert.Equal(t, "", FitLine("abc", 0))
}

// =============================================================================
// TABS
// =============================================================================

func TestTabs_MatchHitTestGeometry(t *testing.T) {
	theme := styles.NewTheme()
	labels := []string{"Core", "Custom", "Network", "RPC"}

	line := Tabs(theme, labels, 2, 200)
	assert.Equal(t, 200, lipgloss.Width(line))

	// The strip's plain text places each label where nav.TabAt expects it.
	plain := strings.TrimRight(stripStyles(line), " ")
	assert.Equal(t, " Core | Custom | Network | RPC |", plain)
	assert.Equal(t, TabsWidth(labels), len(plain))

	pos := 0
	for i, label := range labels {
		at := strings.Index(plain, label)
		got, ok := nav.TabAt(labels, 0, at)
		require.True(t, ok)
		assert.Equal(t, i, got, "label %q", label)
		pos += nav.TabWidth(label)
	}
	_, ok := nav.TabAt(labels, 0, pos)
	assert.False(t, ok, "no tab past the last separator")
}

func TestTabs_ClippedToWidth(t *testing.T) {
	line := Tabs(styles.NewTheme(), []string{"Core", "Network", "Wallet"}, 0, 10)
	assert.Equal(t, 10, lipgloss.Width(line))
}

func stripStyles(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// =============================================================================
// LIST
// =============================================================================

func TestList_Window(t *testing.T) {
	theme := styles.NewTheme()
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = Row{Text: string(rune('a' + i))}
	}

	lines := List{Rows: rows, Selected: 5, Offset: 4, Height: 3, Width: 6}.Lines(theme)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "e")
	assert.Contains(t, lines[1], "f")
	assert.Contains(t, lines[2], "g")
	for _, line := range lines {
		assert.Equal(t, 6, lipgloss.Width(line))
	}

	lines = List{Rows: rows, Offset: 8, Height: 5, Width: 6}.Lines(theme)
	assert.Len(t, lines, 2, "the window stops at the last row")

	assert.Nil(t, List{Rows: rows, Height: 0, Width: 6}.Lines(theme))
}

func TestFileRows(t *testing.T) {
	rows := FileRows([]explorer.Entry{
		{Name: explorer.ParentName, IsDir: true, IsParent: true},
		{Name: "blocks", IsDir: true},
		{Name: "bitcoin.conf"},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, Row{Text: "[^] ..", Style: RowDir}, rows[0])
	assert.Equal(t, Row{Text: "[+] blocks/", Style: RowDir}, rows[1])
	assert.Equal(t, Row{Text: "[ ] bitcoin.conf", Style: RowPlain}, rows[2])
}

func TestOptionRows(t *testing.T) {
	server, ok := schema.Lookup("server")
	require.True(t, ok)
	port, ok := schema.Lookup("rpcport")
	require.True(t, ok)

	entries := []*nodeconf.Entry{
		{Key: "server", Value: "1", Schema: server, Enabled: true},
		{Key: "rpcport", Value: port.Default, Schema: port},
	}

	rows := OptionRows(entries, false)
	assert.Equal(t, Row{Text: "[x] server  1", Style: RowPlain}, rows[0])
	assert.Equal(t, Row{Text: "[ ] rpcport " + port.Default, Style: RowMuted}, rows[1])

	rows = OptionRows(entries, true)
	assert.Contains(t, rows[0].Text, "<bool>")
	assert.Contains(t, rows[1].Text, "<int>")
}

// =============================================================================
// HEADER AND FOOTER
// =============================================================================

func TestHeader_View(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader()
	h.Width = 70
	h.Path = "/home/node/.bitcoin/bitcoin.conf"
	h.Dirty = true
	h.HasStatus = true
	h.Status = probe.Result{State: probe.Running, PID: 4242}

	view := h.View(theme)
	assert.Equal(t, 70, lipgloss.Width(view))
	assert.Contains(t, view, "pdm")
	assert.Contains(t, view, "running (pid 4242)")
	assert.Contains(t, view, styles.Icons.Dirty)

	h.Width = 10
	assert.Equal(t, 10, lipgloss.Width(h.View(theme)))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "bitcoind: running (pid 7)", StatusText(probe.Result{State: probe.Running, PID: 7}))
	assert.Equal(t, "bitcoind: stopped", StatusText(probe.Result{State: probe.Stopped}))
	assert.Equal(t, "bitcoind: unknown", StatusText(probe.Result{}))
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "/a/b.conf", ShortPath("/a/b.conf", 20))
	assert.Equal(t, "…b.conf", ShortPath("/a/b.conf", 7))
	assert.LessOrEqual(t, lipgloss.Width(ShortPath("/very/long/path/bitcoin.conf", 12)), 12)
}

func TestFooter(t *testing.T) {
	theme := styles.NewTheme()

	assert.Equal(t, 40, lipgloss.Width(Notice("", false, 40)))
	ok := Notice("Saved /x", false, 40)
	assert.Contains(t, ok, styles.StatusIndicators.Success)
	bad := Notice("Save failed: nope", true, 40)
	assert.Contains(t, bad, styles.StatusIndicators.Error)
	assert.Equal(t, 40, lipgloss.Width(bad))

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
	line := HelpLine(theme, NewHelp(theme), bindings, 50)
	assert.Equal(t, 50, lipgloss.Width(line))
	assert.Contains(t, line, "quit")
}
