// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/pdm-tui/internal/ui/styles"
)

// =============================================================================
// FOOTER COMPONENTS - notice line and key help
// =============================================================================

// Notice renders the one-shot message line. Empty notices render blank.
func Notice(notice string, failed bool, width int) string {
	if notice == "" {
		return FitLine("", width)
	}
	return FitLine(" "+styles.RenderStatus(!failed, notice), width)
}

// NewHelp returns a help model styled with the theme.
func NewHelp(theme *styles.Theme) help.Model {
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.ShortSeparator = theme.TabSeparator
	h.Styles.Ellipsis = theme.ShortcutDesc
	return h
}

// HelpLine renders bindings as one line of exactly width cells.
func HelpLine(theme *styles.Theme, h help.Model, bindings []key.Binding, width int) string {
	h.Width = max(width-1, 0)
	return theme.StatusBar.Render(FitLine(" "+h.ShortHelpView(bindings), width))
}
