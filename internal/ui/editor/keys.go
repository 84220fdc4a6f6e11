// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pdm-tui/internal/nav"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings of the editor.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Toggle      key.Binding
	Save        key.Binding
	Copy        key.Binding
	Backspace   key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings, with vim-like aliases for
// movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev section"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "enable/disable"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("bksp", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "force quit"),
		),
	}
}

// =============================================================================
// KEY DECODING
// =============================================================================

// Event maps a key press to a nav event for screen. In EditingValue every
// printable key is text, so "q" and the movement aliases insert.
func (k KeyMap) Event(msg tea.KeyMsg, screen nav.Screen) nav.Event {
	if screen == nav.ScreenEditingValue {
		switch {
		case key.Matches(msg, k.Confirm):
			return nav.Event{Action: nav.ActionConfirm}
		case key.Matches(msg, k.Cancel):
			return nav.Event{Action: nav.ActionCancel}
		case key.Matches(msg, k.Backspace):
			return nav.Event{Action: nav.ActionBackspace}
		case msg.Type == tea.KeyRunes && !msg.Alt:
			return nav.Event{Action: nav.ActionInsert, Text: string(msg.Runes)}
		case msg.Type == tea.KeySpace:
			return nav.Event{Action: nav.ActionInsert, Text: " "}
		}
		return nav.Event{}
	}

	bindings := []struct {
		binding key.Binding
		action  nav.Action
	}{
		{k.Quit, nav.ActionQuit},
		{k.Confirm, nav.ActionConfirm},
		{k.Cancel, nav.ActionCancel},
		{k.Up, nav.ActionUp},
		{k.Down, nav.ActionDown},
		{k.NextSection, nav.ActionNextSection},
		{k.PrevSection, nav.ActionPrevSection},
		{k.Toggle, nav.ActionToggle},
		{k.Save, nav.ActionSave},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return nav.Event{Action: b.action}
		}
	}
	return nav.Event{}
}

// =============================================================================
// HELP
// =============================================================================

// HelpFor returns the bindings shown in the footer for screen.
func (k KeyMap) HelpFor(screen nav.Screen) []key.Binding {
	switch screen {
	case nav.ScreenMain:
		return []key.Binding{relabel(k.Confirm, "open file"), k.Quit}
	case nav.ScreenFileExplorer:
		return []key.Binding{k.Up, k.Down, relabel(k.Confirm, "open"), k.Cancel}
	case nav.ScreenEditing:
		return []key.Binding{
			k.NextSection, k.Up, k.Down,
			relabel(k.Confirm, "edit"), k.Toggle, k.Copy, k.Save, k.Cancel,
		}
	case nav.ScreenEditingValue:
		return []key.Binding{relabel(k.Confirm, "commit"), relabel(k.Cancel, "discard"), k.Backspace}
	default:
		return nil
	}
}

func relabel(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
