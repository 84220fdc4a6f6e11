// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor is the bubbletea front end of the config editor.
//
// The Model decodes keys and mouse presses into nav events, lays out the
// screen, and renders the nav.Machine state. All state transitions happen in
// the machine; the model only keeps terminal size and list scroll offsets.
//
// # Layout
//
//	row 0        header (title, file, daemon status)
//	rows 1..h-3  body (one of the four screens)
//	row h-2      notice
//	row h-1      key help
//
// The body regions are computed in Update and recorded in a nav.Layout, so a
// press always resolves against the frame the user is looking at.
package editor
