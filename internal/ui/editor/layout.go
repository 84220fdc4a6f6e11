// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// Minimum terminal size. Below it the body is replaced by a hint and no
// region accepts presses.
const (
	MinWidth  = 30
	MinHeight = 12
)

const (
	headerHeight = 1
	footerHeight = 2
	boxHeight    = 3 // one interior row
	mainButton   = " Open config file "
)

// frame is the geometry of one rendered screen.
type frame struct {
	layout nav.Layout
	small  bool

	body    nav.Rect
	info    nav.Rect // Main
	detail  nav.Rect // Editing and EditingValue
	visible int      // rows of the active list
}

// relayout recomputes the frame for the current screen and size and keeps
// the selection of the active list in view.
func (m *Model) relayout() {
	prev := m.frame.layout
	f := frame{}

	if m.width < MinWidth || m.height < MinHeight {
		f.small = true
		m.frame = f
		return
	}

	f.body = nav.Rect{X: 0, Y: headerHeight, Width: m.width, Height: m.height - headerHeight - footerHeight}

	switch m.machine.Screen() {
	case nav.ScreenMain:
		f.info = nav.Rect{X: 0, Y: f.body.Y, Width: m.width, Height: f.body.Height - boxHeight}
		f.layout.MainButton = nav.Rect{
			X:      0,
			Y:      f.info.Y + f.info.Height,
			Width:  util.StringWidth(mainButton) + 2,
			Height: boxHeight,
		}

	case nav.ScreenFileExplorer:
		f.layout.FileList = f.body
		f.visible = f.body.Height - 2
		b := m.machine.Browser()
		f.layout.FileOffset = nav.Follow(b.Cursor(), prev.FileOffset, f.visible)

	case nav.ScreenEditing, nav.ScreenEditingValue:
		f.layout.Tabs = nav.Rect{X: 0, Y: f.body.Y, Width: m.width, Height: boxHeight}
		listHeight := f.body.Height - 2*boxHeight
		f.layout.OptionList = nav.Rect{X: 0, Y: f.body.Y + boxHeight, Width: m.width, Height: listHeight}
		f.detail = nav.Rect{X: 0, Y: f.body.Y + boxHeight + listHeight, Width: m.width, Height: boxHeight}
		f.visible = listHeight - 2
		f.layout.OptionOffset = nav.Follow(m.machine.ItemIndex(), prev.OptionOffset, f.visible)
	}

	m.frame = f
}
