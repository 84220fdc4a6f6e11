// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the pdm editor.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - Focused borders and the active tab
  - Cyan - Titles, directories and key hints
  - Emerald - Enabled options and a running daemon
  - Amber - Unsaved changes and the edit cursor
  - Rose - Errors and a stopped daemon

# Theme System (theme.go)

	theme := styles.NewTheme()
	if theme.GetLayoutMode() == styles.LayoutNarrow {
		// drop the kind badges
	}

# Glyphs (glyphs.go)

BoxChars and Icons are ASCII and one cell wide, so rendered widths match the
cell arithmetic used for mouse hit testing.
*/
package styles
