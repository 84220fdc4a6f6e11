// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderPath  lipgloss.Style
	DirtyMark   lipgloss.Style

	// ==========================================================================
	// DAEMON STATUS STYLES
	// ==========================================================================

	StatusRunning lipgloss.Style
	StatusStopped lipgloss.Style
	StatusUnknown lipgloss.Style

	// ==========================================================================
	// BOX STYLES
	// ==========================================================================

	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	BoxTitle      lipgloss.Style

	// ==========================================================================
	// LIST STYLES
	// ==========================================================================

	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemMuted    lipgloss.Style
	DirName      lipgloss.Style
	KindBadge    lipgloss.Style
	Value        lipgloss.Style

	// ==========================================================================
	// TAB STYLES
	// ==========================================================================

	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TabSeparator lipgloss.Style

	// ==========================================================================
	// MAIN SCREEN STYLES
	// ==========================================================================

	Button      lipgloss.Style
	Description lipgloss.Style
	EditBuffer  lipgloss.Style
	EditCursor  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextPrimary)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.HeaderPath = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.DirtyMark = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	// Daemon status
	t.StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(Emerald)
	t.StatusStopped = lipgloss.NewStyle().Bold(true).Foreground(Rose)
	t.StatusUnknown = lipgloss.NewStyle().Foreground(TextMuted)

	// Boxes
	t.BorderFocused = lipgloss.NewStyle().Foreground(Purple)
	t.BorderBlurred = lipgloss.NewStyle().Foreground(Overlay)
	t.BoxTitle = lipgloss.NewStyle().Bold(true).Foreground(Cyan)

	// Lists
	t.Item = lipgloss.NewStyle().Foreground(TextPrimary)
	t.ItemSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Background(SelectionBg)
	t.ItemMuted = lipgloss.NewStyle().Foreground(TextMuted)
	t.DirName = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.KindBadge = lipgloss.NewStyle().Foreground(Purple)
	t.Value = lipgloss.NewStyle().Foreground(TextSecondary)

	// Tabs
	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple)
	t.TabInactive = lipgloss.NewStyle().Foreground(TextSecondary)
	t.TabSeparator = lipgloss.NewStyle().Foreground(Overlay)

	// Main screen and editor
	t.Button = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.Description = lipgloss.NewStyle().Foreground(TextSecondary).Italic(true)
	t.EditBuffer = lipgloss.NewStyle().Foreground(TextPrimary)
	t.EditCursor = lipgloss.NewStyle().Bold(true).Foreground(Amber)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim)
	t.ShortcutKey = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
