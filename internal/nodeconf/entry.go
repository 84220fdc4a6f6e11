// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nodeconf

import "github.com/jeranaias/pdm-tui/internal/schema"

// SectionCustom is the display section holding entries the catalog does not
// know.
const SectionCustom = "Custom"

// Entry is one configuration key with its current value.
//
// Schema points into the shared catalog and is nil for custom entries.
// Disabled entries keep their value in memory but are not written on save.
type Entry struct {
	Key     string
	Value   string
	Schema  *schema.Option
	Enabled bool
}

// IsCustom reports whether the entry has no catalog record.
func (e *Entry) IsCustom() bool {
	return e.Schema == nil
}

// Kind returns the catalog kind, or KindText for custom entries.
func (e *Entry) Kind() schema.Kind {
	if e.Schema == nil {
		return schema.KindText
	}
	return e.Schema.Kind
}

// IsBoolean reports whether the entry toggles between "1" and "0".
func (e *Entry) IsBoolean() bool {
	return e.Schema != nil && e.Schema.IsBoolean()
}

// SectionName returns the display section the entry belongs to.
func (e *Entry) SectionName() string {
	if e.Schema == nil {
		return SectionCustom
	}
	return e.Schema.Category.String()
}

// Default returns the catalog default, or "" for custom entries.
func (e *Entry) Default() string {
	if e.Schema == nil {
		return ""
	}
	return e.Schema.Default
}

// Description returns the catalog description, or "" for custom entries.
func (e *Entry) Description() string {
	if e.Schema == nil {
		return ""
	}
	return e.Schema.Description
}

func defaultEntries() []*Entry {
	opts := schema.All()
	entries := make([]*Entry, 0, len(opts))
	for _, opt := range opts {
		ref, _ := schema.Lookup(opt.Key)
		entries = append(entries, &Entry{
			Key:    opt.Key,
			Value:  opt.Default,
			Schema: ref,
		})
	}
	return entries
}
