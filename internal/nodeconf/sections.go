// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nodeconf

import "sort"

// Section is a display grouping of entries. Its entries are the document's
// own records, so edits through a Section reach the document.
type Section struct {
	Name    string
	Entries []*Entry
}

// Sections groups the entries by category name, with custom entries under
// "Custom", sorted by name. Empty groups are omitted.
func (d *Document) Sections() []Section {
	groups := make(map[string][]*Entry)
	for _, e := range d.entries {
		name := e.SectionName()
		groups[name] = append(groups[name], e)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		sections = append(sections, Section{Name: name, Entries: groups[name]})
	}
	return sections
}

// SectionNames returns the names of sections in display order.
func SectionNames(sections []Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}
