// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pdm-tui/internal/nav"
)

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.log.Debug().Msg("force quit")
			return m, tea.Quit
		}
		if m.machine.Screen() == nav.ScreenEditing && key.Matches(msg, m.keys.Copy) {
			m.copyEntry()
			break
		}
		// Unbound keys still reach the machine so they clear the notice.
		if m.machine.Handle(m.keys.Event(msg, m.machine.Screen())) {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.relayout()
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// Releases and drags finish a press that was already handled.
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.machine.Press(msg.X, msg.Y, m.frame.layout)
	case tea.MouseButtonWheelUp:
		m.scroll(nav.ActionUp)
	case tea.MouseButtonWheelDown:
		m.scroll(nav.ActionDown)
	default:
		m.machine.Handle(nav.Event{})
	}
}

// scroll moves the selection of the list under the wheel. Elsewhere the
// wheel is an ignored event, which still clears the notice.
func (m *Model) scroll(action nav.Action) {
	switch m.machine.Screen() {
	case nav.ScreenFileExplorer, nav.ScreenEditing:
		m.machine.Handle(nav.Event{Action: action})
	default:
		m.machine.Handle(nav.Event{})
	}
}

// copyEntry puts the selected entry on the clipboard as a config line. The
// outcome is reported through the machine notice.
func (m *Model) copyEntry() {
	e, ok := m.machine.CurrentEntry()
	if !ok {
		return
	}
	line := e.Key + "=" + e.Value
	if err := m.writeClipboard(line); err != nil {
		m.log.Debug().Err(err).Msg("clipboard write failed")
		m.machine.Notify(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.machine.Notify("Copied "+line, false)
}
