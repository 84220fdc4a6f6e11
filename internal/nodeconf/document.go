// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nodeconf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeranaias/pdm-tui/internal/schema"
	"github.com/jeranaias/pdm-tui/internal/util"
)

// DefaultFileMode is used when saving to a path that does not exist yet.
// bitcoin.conf routinely carries rpc credentials.
const DefaultFileMode = 0600

// Document owns every entry of one configuration file.
//
// Callers mutate entries only through the Document methods; the *Entry values
// it hands out are shared with Sections and stay valid until the entry is
// removed.
type Document struct {
	path    string
	entries []*Entry
	byKey   map[string]*Entry
	dirty   bool
}

// NewDocument wraps entries for the file at path. The entry order is kept.
func NewDocument(path string, entries []*Entry) *Document {
	d := &Document{
		path:    path,
		entries: make([]*Entry, 0, len(entries)),
		byKey:   make(map[string]*Entry, len(entries)),
	}
	for _, e := range entries {
		if _, dup := d.byKey[e.Key]; dup {
			continue
		}
		d.entries = append(d.entries, e)
		d.byKey[e.Key] = e
	}
	return d
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Dirty reports whether the document changed since it was loaded or saved.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// =============================================================================
// LOOKUP
// =============================================================================

// Get returns the entry for key.
func (d *Document) Get(key string) (*Entry, bool) {
	e, ok := d.byKey[key]
	return e, ok
}

// Entries returns all entries in document order.
func (d *Document) Entries() []*Entry {
	out := make([]*Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// EnabledEntries returns the entries that will be written on save.
func (d *Document) EnabledEntries() []*Entry {
	var out []*Entry
	for _, e := range d.entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}

// EntriesByCategory returns the catalog entries of category c.
func (d *Document) EntriesByCategory(c schema.Category) []*Entry {
	var out []*Entry
	for _, e := range d.entries {
		if e.Schema != nil && e.Schema.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// CustomEntries returns the entries without a catalog record.
func (d *Document) CustomEntries() []*Entry {
	var out []*Entry
	for _, e := range d.entries {
		if e.Schema == nil {
			out = append(out, e)
		}
	}
	return out
}

// =============================================================================
// MUTATION
// =============================================================================

// Set stores the cleaned value for an existing key and enables it. It never
// creates an entry; use AddCustom for new keys.
func (d *Document) Set(key, value string) bool {
	e, ok := d.byKey[key]
	if !ok {
		return false
	}
	e.Value = CleanValue(value)
	e.Enabled = true
	d.dirty = true
	return true
}

// Enable marks key to be written on save. The value is not touched.
func (d *Document) Enable(key string) bool {
	return d.setEnabled(key, true)
}

// Disable excludes key from save. The value is kept in memory.
func (d *Document) Disable(key string) bool {
	return d.setEnabled(key, false)
}

// Toggle flips whether key is written on save.
func (d *Document) Toggle(key string) bool {
	e, ok := d.byKey[key]
	if !ok {
		return false
	}
	return d.setEnabled(key, !e.Enabled)
}

func (d *Document) setEnabled(key string, enabled bool) bool {
	e, ok := d.byKey[key]
	if !ok {
		return false
	}
	if e.Enabled != enabled {
		e.Enabled = enabled
		d.dirty = true
	}
	return true
}

// AddCustom inserts or updates key. A new entry has no catalog record; an
// existing entry keeps its record. Either way the entry ends up enabled.
func (d *Document) AddCustom(key, value string) {
	value = CleanValue(value)
	if e, ok := d.byKey[key]; ok {
		e.Value = value
		e.Enabled = true
		d.dirty = true
		return
	}
	e := &Entry{Key: key, Value: value, Enabled: true}
	d.entries = append(d.entries, e)
	d.byKey[key] = e
	d.dirty = true
}

// Remove deletes the entry for key.
func (d *Document) Remove(key string) bool {
	if _, ok := d.byKey[key]; !ok {
		return false
	}
	delete(d.byKey, key)
	for i, e := range d.entries {
		if e.Key == key {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			break
		}
	}
	d.dirty = true
	return true
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Text renders the enabled entries as file contents.
//
// Groups follow the catalog category order with custom entries last, each
// introduced by a "# <Category>" line and separated by a blank line.
func (d *Document) Text() string {
	var blocks []string
	for _, c := range schema.Categories() {
		if block := renderBlock(c.String(), enabledOnly(d.EntriesByCategory(c))); block != "" {
			blocks = append(blocks, block)
		}
	}

	custom := enabledOnly(d.CustomEntries())
	sort.Slice(custom, func(i, j int) bool { return custom[i].Key < custom[j].Key })
	if block := renderBlock(SectionCustom, custom); block != "" {
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n")
}

func renderBlock(title string, entries []*Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteByte('\n')
	for _, e := range entries {
		sb.WriteString(e.Key)
		sb.WriteByte('=')
		sb.WriteString(e.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func enabledOnly(entries []*Entry) []*Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}

// Save writes the document back to the file it was loaded from.
func (d *Document) Save() error {
	return d.SaveTo(d.path)
}

// SaveTo writes Text to path, creating missing parent directories. An
// existing file keeps its permission bits. Nothing is written while an enabled
// value fails ValidateValue.
func (d *Document) SaveTo(path string) error {
	if path == "" {
		return fmt.Errorf("failed to save: no path")
	}
	if err := validateEntries(d.entries); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	mode := util.ExistingMode(path, DefaultFileMode)
	if err := util.AtomicWriteFile(path, []byte(d.Text()), mode); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if path == d.path {
		d.dirty = false
	}
	return nil
}
