// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/jeranaias/pdm-tui/internal/explorer"
	"github.com/jeranaias/pdm-tui/internal/nodeconf"
	"github.com/jeranaias/pdm-tui/internal/probe"
)

// =============================================================================
// SCREENS AND EVENTS
// =============================================================================

// Screen is the state of the machine.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenFileExplorer
	ScreenEditing
	ScreenEditingValue
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenFileExplorer:
		return "explorer"
	case ScreenEditing:
		return "editing"
	case ScreenEditingValue:
		return "editing-value"
	default:
		return "unknown"
	}
}

// Action is a logical input, already decoded from keys.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionConfirm
	ActionCancel
	ActionUp
	ActionDown
	ActionNextSection
	ActionPrevSection
	ActionToggle
	ActionSave
	ActionBackspace
	ActionInsert
)

// Event is one input. Text carries the characters of an ActionInsert.
type Event struct {
	Action Action
	Text   string
}

// =============================================================================
// COLLABORATORS
// =============================================================================

// Loader parses a configuration file. *nodeconf.Parser implements it.
type Loader interface {
	Load(path string) (*nodeconf.Document, error)
}

// Prober checks daemon liveness.
type Prober interface {
	Probe(ctx context.Context, t probe.Target) probe.Result
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context, t probe.Target) probe.Result

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, t probe.Target) probe.Result {
	return f(ctx, t)
}

// Options configures a Machine. Zero values select the real collaborators.
type Options struct {
	Loader       Loader
	Prober       Prober
	Lister       explorer.Lister
	StartDir     string
	ShowHidden   bool
	ProbeTimeout time.Duration
	Logger       zerolog.Logger
}

// =============================================================================
// MACHINE
// =============================================================================

// Machine owns the open document and all selection state. It is driven one
// event at a time from a single goroutine.
type Machine struct {
	screen Screen

	doc        *nodeconf.Document
	sections   []nodeconf.Section
	sectionIdx int
	itemIdx    int
	buffer     []rune
	notice     string
	failed     bool
	status     probe.Result

	browser *explorer.Browser
	loader  Loader
	prober  Prober
	timeout time.Duration
	log     zerolog.Logger
}

// New creates a machine on the Main screen.
func New(opts Options) *Machine {
	log := opts.Logger.With().Str("component", "nav").Logger()
	if opts.Loader == nil {
		opts.Loader = nodeconf.NewParser(opts.Logger)
	}
	if opts.Prober == nil {
		opts.Prober = ProberFunc(probe.Probe)
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = probe.DefaultTimeout
	}
	if opts.StartDir == "" {
		opts.StartDir = "."
	}
	if abs, err := filepath.Abs(opts.StartDir); err == nil {
		opts.StartDir = abs
	}
	return &Machine{
		screen:  ScreenMain,
		browser: explorer.NewBrowser(opts.StartDir, opts.ShowHidden, opts.Lister),
		loader:  opts.Loader,
		prober:  opts.Prober,
		timeout: opts.ProbeTimeout,
		log:     log,
	}
}

// Screen returns the current screen.
func (m *Machine) Screen() Screen { return m.screen }

// Document returns the open document, or nil.
func (m *Machine) Document() *nodeconf.Document { return m.doc }

// Sections returns the display sections of the open document.
func (m *Machine) Sections() []nodeconf.Section { return m.sections }

// SectionIndex returns the selected section.
func (m *Machine) SectionIndex() int { return m.sectionIdx }

// ItemIndex returns the selected entry within the selected section.
func (m *Machine) ItemIndex() int { return m.itemIdx }

// Buffer returns the edit buffer.
func (m *Machine) Buffer() string { return string(m.buffer) }

// Notice returns the one-shot message for the operator.
func (m *Machine) Notice() string { return m.notice }

// NoticeFailed reports whether the notice describes a failure.
func (m *Machine) NoticeFailed() bool { return m.failed }

// Notify sets the notice for an action the front end performs itself. It is
// cleared like any other notice.
func (m *Machine) Notify(msg string, failed bool) {
	m.notice = msg
	m.failed = failed
}

// Status returns the last liveness probe result.
func (m *Machine) Status() probe.Result { return m.status }

// Browser returns the file explorer state.
func (m *Machine) Browser() *explorer.Browser { return m.browser }

// CurrentSection returns the selected section.
func (m *Machine) CurrentSection() (nodeconf.Section, bool) {
	if m.sectionIdx < 0 || m.sectionIdx >= len(m.sections) {
		return nodeconf.Section{}, false
	}
	return m.sections[m.sectionIdx], true
}

// CurrentEntry returns the entry addressed by the selection indices.
func (m *Machine) CurrentEntry() (*nodeconf.Entry, bool) {
	sec, ok := m.CurrentSection()
	if !ok || m.itemIdx < 0 || m.itemIdx >= len(sec.Entries) {
		return nil, false
	}
	return sec.Entries[m.itemIdx], true
}

// Handle applies ev and reports whether the loop should stop.
// Events with no transition in the current screen are ignored.
func (m *Machine) Handle(ev Event) bool {
	if ev.Action != ActionSave {
		m.clearNotice()
	}

	switch m.screen {
	case ScreenMain:
		return m.handleMain(ev)
	case ScreenFileExplorer:
		m.handleExplorer(ev)
	case ScreenEditing:
		m.handleEditing(ev)
	case ScreenEditingValue:
		m.handleEditingValue(ev)
	}
	return false
}

func (m *Machine) handleMain(ev Event) bool {
	switch ev.Action {
	case ActionQuit:
		return true
	case ActionConfirm:
		m.openExplorer()
	}
	return false
}

func (m *Machine) handleExplorer(ev Event) {
	switch ev.Action {
	case ActionCancel:
		m.setScreen(ScreenMain)
	case ActionUp:
		m.browser.Up()
	case ActionDown:
		m.browser.Down()
	case ActionConfirm:
		sel, ok := m.browser.Selected()
		if !ok {
			return
		}
		if sel.IsDir {
			if err := m.browser.ChangeDir(sel.Path); err != nil {
				m.log.Warn().Err(err).Str("dir", sel.Path).Msg("cannot enter directory")
				m.fail("Cannot open directory: %v", err)
			}
			return
		}
		if err := m.OpenFile(sel.Path); err != nil {
			m.fail("Open failed: %v", err)
		}
	}
}

func (m *Machine) handleEditing(ev Event) {
	switch ev.Action {
	case ActionCancel:
		m.setScreen(ScreenMain)
	case ActionNextSection:
		m.stepSection(1)
	case ActionPrevSection:
		m.stepSection(-1)
	case ActionDown:
		if sec, ok := m.CurrentSection(); ok && m.itemIdx < len(sec.Entries)-1 {
			m.itemIdx++
		}
	case ActionUp:
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case ActionConfirm:
		e, ok := m.CurrentEntry()
		if !ok {
			return
		}
		if e.IsBoolean() {
			next := "1"
			if e.Value == "1" {
				next = "0"
			}
			m.doc.Set(e.Key, next)
			return
		}
		m.buffer = []rune(e.Value)
		m.setScreen(ScreenEditingValue)
	case ActionToggle:
		if e, ok := m.CurrentEntry(); ok {
			m.doc.Toggle(e.Key)
		}
	case ActionSave:
		m.save()
	}
}

func (m *Machine) handleEditingValue(ev Event) {
	switch ev.Action {
	case ActionCancel:
		m.buffer = nil
		m.setScreen(ScreenEditing)
	case ActionConfirm:
		if e, ok := m.CurrentEntry(); ok {
			value := string(m.buffer)
			if err := nodeconf.ValidateValue(value); err != nil {
				m.fail("Invalid value: %v", err)
				return
			}
			m.doc.Set(e.Key, value)
		}
		m.buffer = nil
		m.setScreen(ScreenEditing)
	case ActionBackspace:
		if n := len(m.buffer); n > 0 {
			m.buffer = m.buffer[:n-1]
		}
	case ActionInsert:
		for _, r := range ev.Text {
			if unicode.IsPrint(r) {
				m.buffer = append(m.buffer, r)
			}
		}
	}
}

// =============================================================================
// TRANSITION HELPERS
// =============================================================================

func (m *Machine) setScreen(s Screen) {
	if m.screen != s {
		m.log.Debug().Stringer("from", m.screen).Stringer("to", s).Msg("screen change")
	}
	m.screen = s
}

func (m *Machine) clearNotice() {
	m.notice = ""
	m.failed = false
}

func (m *Machine) fail(format string, args ...any) {
	m.notice = fmt.Sprintf(format, args...)
	m.failed = true
}

func (m *Machine) openExplorer() {
	if err := m.browser.Refresh(); err != nil {
		m.log.Warn().Err(err).Str("dir", m.browser.Dir()).Msg("cannot list directory")
		m.fail("Cannot list directory: %v", err)
	}
	m.setScreen(ScreenFileExplorer)
}

func (m *Machine) stepSection(delta int) {
	n := len(m.sections)
	if n == 0 {
		return
	}
	m.sectionIdx = ((m.sectionIdx+delta)%n + n) % n
	m.itemIdx = 0
}

func (m *Machine) save() {
	if m.doc == nil {
		return
	}
	if err := m.doc.Save(); err != nil {
		m.log.Error().Err(err).Str("path", m.doc.Path()).Msg("save failed")
		m.fail("Save failed: %v", err)
		return
	}
	m.log.Info().Str("path", m.doc.Path()).Int("enabled", len(m.doc.EnabledEntries())).Msg("config saved")
	m.notice = "Saved " + m.doc.Path()
	m.failed = false
}

// OpenFile loads path, rebuilds the sections, probes the daemon and moves
// to Editing. On failure the machine is unchanged and the error is returned.
func (m *Machine) OpenFile(path string) error {
	doc, err := m.loader.Load(path)
	if err != nil {
		m.log.Warn().Err(err).Str("path", path).Msg("cannot open config")
		return err
	}

	m.doc = doc
	m.sections = doc.Sections()
	m.sectionIdx = 0
	m.itemIdx = 0
	m.buffer = nil
	m.log.Info().Str("path", path).Int("entries", doc.Len()).Msg("config opened")

	m.Reprobe()
	m.setScreen(ScreenEditing)
	return nil
}

// Reprobe refreshes the daemon status for the open document.
func (m *Machine) Reprobe() {
	if m.doc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	m.status = m.prober.Probe(ctx, TargetFor(m.doc))
	m.log.Debug().Stringer("state", m.status.State).Int("pid", m.status.PID).Msg("daemon probed")
}

// TargetFor builds the liveness probe target of doc. Disabled pid and
// datadir entries count as unset.
func TargetFor(doc *nodeconf.Document) probe.Target {
	t := probe.Target{ConfDir: filepath.Dir(doc.Path())}
	if e, ok := doc.Get("pid"); ok && e.Enabled {
		t.PIDFile = e.Value
	}
	if e, ok := doc.Get("datadir"); ok && e.Enabled {
		t.DataDir = e.Value
	}
	return t
}

// =============================================================================
// DIRECT SELECTION
// =============================================================================

// SelectSection selects section i and resets the item index when it changes.
func (m *Machine) SelectSection(i int) bool {
	if i < 0 || i >= len(m.sections) {
		return false
	}
	if i != m.sectionIdx {
		m.sectionIdx = i
		m.itemIdx = 0
	}
	return true
}

// SelectItem selects entry i of the current section.
func (m *Machine) SelectItem(i int) bool {
	sec, ok := m.CurrentSection()
	if !ok || i < 0 || i >= len(sec.Entries) {
		return false
	}
	m.itemIdx = i
	return true
}
