// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/ui/components"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
)

// Model is the bubbletea model wrapping a nav.Machine.
type Model struct {
	machine *nav.Machine
	theme   *styles.Theme
	keys    KeyMap
	help    help.Model
	log     zerolog.Logger

	// writeClipboard writes to the system clipboard.
	writeClipboard func(string) error

	width  int
	height int

	// frame is recomputed after every message.
	frame frame
}

// New creates the editor model for machine.
func New(machine *nav.Machine, theme *styles.Theme, log zerolog.Logger) Model {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return Model{
		machine:        machine,
		theme:          theme,
		keys:           DefaultKeyMap(),
		help:           components.NewHelp(theme),
		log:            log.With().Str("component", "editor").Logger(),
		writeClipboard: clipboard.WriteAll,
	}
}

// Init satisfies tea.Model. The first frame waits for the window size.
func (m Model) Init() tea.Cmd {
	return nil
}

// Machine returns the wrapped state machine.
func (m Model) Machine() *nav.Machine {
	return m.machine
}

// Layout returns the interactive regions of the current frame.
func (m Model) Layout() nav.Layout {
	return m.frame.layout
}
