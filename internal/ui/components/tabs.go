// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
)

// =============================================================================
// TABS COMPONENT - section strip
// =============================================================================

// TabSeparator follows every tab.
const TabSeparator = "|"

// Tabs renders the section strip as one line of exactly width cells. Tab i
// spans nav.TabWidth(labels[i]) cells so presses resolve with nav.TabAt.
func Tabs(theme *styles.Theme, labels []string, active, width int) string {
	var sb strings.Builder
	for i, label := range labels {
		style := theme.TabInactive
		if i == active {
			style = theme.TabActive
		}
		sb.WriteString(style.Render(" " + label + " "))
		sb.WriteString(theme.TabSeparator.Render(TabSeparator))
	}
	return FitLine(sb.String(), width)
}

// TabsWidth returns the cells needed to show every label.
func TabsWidth(labels []string) int {
	w := 0
	for _, label := range labels {
		w += nav.TabWidth(label)
	}
	return w
}
