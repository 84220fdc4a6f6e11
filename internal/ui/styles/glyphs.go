// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

// =============================================================================
// BORDER CHARACTERS (for custom borders)
// =============================================================================

// BoxChars for custom box drawing (ASCII-safe). Every glyph is one cell wide.
var BoxChars = struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}{
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
	Horizontal:  "-",
	Vertical:    "|",
}

// =============================================================================
// LIST MARKERS
// =============================================================================

// Icons mark explorer rows and option state.
var Icons = struct {
	Parent   string
	Dir      string
	File     string
	Enabled  string
	Disabled string
	Cursor   string
	Dirty    string
}{
	Parent:   "[^]",
	Dir:      "[+]",
	File:     "[ ]",
	Enabled:  "[x]",
	Disabled: "[ ]",
	Cursor:   "_",
	Dirty:    "*",
}
