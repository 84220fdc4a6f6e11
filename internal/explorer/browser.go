// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package explorer

// Browser holds the current directory, its listing and a cursor.
type Browser struct {
	dir        string
	entries    []Entry
	cursor     int
	showHidden bool
	list       Lister
}

// NewBrowser creates a browser rooted at dir. The listing is empty until
// Refresh. A nil list uses List.
func NewBrowser(dir string, showHidden bool, list Lister) *Browser {
	if list == nil {
		list = List
	}
	return &Browser{dir: dir, showHidden: showHidden, list: list}
}

// Dir returns the current directory.
func (b *Browser) Dir() string {
	return b.dir
}

// Entries returns the current listing.
func (b *Browser) Entries() []Entry {
	return b.entries
}

// Cursor returns the index of the highlighted entry.
func (b *Browser) Cursor() int {
	return b.cursor
}

// Refresh re-reads the current directory. On failure the previous listing is
// kept.
func (b *Browser) Refresh() error {
	entries, err := b.list(b.dir, b.showHidden)
	if err != nil {
		return err
	}
	b.entries = entries
	if b.cursor >= len(entries) {
		b.cursor = 0
	}
	return nil
}

// ChangeDir moves into dir and resets the cursor. On failure the browser is
// left where it was.
func (b *Browser) ChangeDir(dir string) error {
	entries, err := b.list(dir, b.showHidden)
	if err != nil {
		return err
	}
	b.dir = dir
	b.entries = entries
	b.cursor = 0
	return nil
}

// Up moves the cursor up, wrapping to the last entry.
func (b *Browser) Up() {
	n := len(b.entries)
	if n == 0 {
		return
	}
	b.cursor = (b.cursor - 1 + n) % n
}

// Down moves the cursor down, wrapping to the first entry.
func (b *Browser) Down() {
	n := len(b.entries)
	if n == 0 {
		return
	}
	b.cursor = (b.cursor + 1) % n
}

// Select moves the cursor to i. It reports false when i is out of range.
func (b *Browser) Select(i int) bool {
	if i < 0 || i >= len(b.entries) {
		return false
	}
	b.cursor = i
	return true
}

// Selected returns the highlighted entry.
func (b *Browser) Selected() (Entry, bool) {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[b.cursor], true
}
