// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package explorer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, d := range []string{"zdir", "adir", ".hiddendir"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, d), 0755))
	}
	for _, f := range []string{"bitcoin.conf", "a.txt", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0644))
	}
	return dir
}

func TestList_DirectoriesFirst(t *testing.T) {
	dir := makeTree(t)

	entries, err := List(dir, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", "adir", "zdir", "a.txt", "bitcoin.conf"}, names(entries))
	assert.True(t, entries[0].IsParent)
	assert.Equal(t, filepath.Dir(dir), entries[0].Path)
	assert.True(t, entries[1].IsDir)
	assert.False(t, entries[3].IsDir)
	assert.Equal(t, filepath.Join(dir, "bitcoin.conf"), entries[4].Path)
}

func TestList_ShowHidden(t *testing.T) {
	dir := makeTree(t)

	entries, err := List(dir, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", ".hiddendir", "adir", "zdir", ".hidden", "a.txt", "bitcoin.conf"}, names(entries))
}

func TestList_RootHasNoParent(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(filepath.Separator)

	entries, err := List(root, false)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.IsParent)
	}
}

func TestList_SymlinkToDirectory(t *testing.T) {
	dir := makeTree(t)
	if err := os.Symlink(filepath.Join(dir, "adir"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := List(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"..", "adir", "link", "zdir", "a.txt", "bitcoin.conf"}, names(entries))
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"), false)
	assert.Error(t, err)
}

func fakeLister(listings map[string][]Entry) Lister {
	return func(dir string, _ bool) ([]Entry, error) {
		entries, ok := listings[dir]
		if !ok {
			return nil, errors.New("no such directory")
		}
		return entries, nil
	}
}

func TestBrowser_Wraparound(t *testing.T) {
	b := NewBrowser("/x", false, fakeLister(map[string][]Entry{
		"/x": {{Name: "a"}, {Name: "b"}, {Name: "c"}},
	}))
	require.NoError(t, b.Refresh())

	b.Up()
	assert.Equal(t, 2, b.Cursor())
	b.Down()
	assert.Equal(t, 0, b.Cursor())
	b.Down()
	b.Down()
	assert.Equal(t, 2, b.Cursor())
}

func TestBrowser_EmptyListing(t *testing.T) {
	b := NewBrowser("/empty", false, fakeLister(map[string][]Entry{"/empty": nil}))
	require.NoError(t, b.Refresh())

	b.Up()
	b.Down()
	assert.Equal(t, 0, b.Cursor())
	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestBrowser_ChangeDir(t *testing.T) {
	b := NewBrowser("/x", false, fakeLister(map[string][]Entry{
		"/x":     {{Name: "a"}, {Name: "sub", Path: "/x/sub", IsDir: true}},
		"/x/sub": {{Name: "..", Path: "/x", IsDir: true, IsParent: true}},
	}))
	require.NoError(t, b.Refresh())
	b.Down()

	require.NoError(t, b.ChangeDir("/x/sub"))
	assert.Equal(t, "/x/sub", b.Dir())
	assert.Equal(t, 0, b.Cursor())
	assert.Len(t, b.Entries(), 1)
}

func TestBrowser_ChangeDirFailureKeepsState(t *testing.T) {
	b := NewBrowser("/x", false, fakeLister(map[string][]Entry{
		"/x": {{Name: "a"}, {Name: "b"}},
	}))
	require.NoError(t, b.Refresh())
	b.Down()

	assert.Error(t, b.ChangeDir("/gone"))
	assert.Equal(t, "/x", b.Dir())
	assert.Equal(t, 1, b.Cursor())
	assert.Len(t, b.Entries(), 2)
}

func TestBrowser_Select(t *testing.T) {
	b := NewBrowser("/x", false, fakeLister(map[string][]Entry{
		"/x": {{Name: "a"}, {Name: "b"}},
	}))
	require.NoError(t, b.Refresh())

	assert.True(t, b.Select(1))
	sel, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.Name)

	assert.False(t, b.Select(2))
	assert.False(t, b.Select(-1))
	assert.Equal(t, 1, b.Cursor())
}

func TestNewBrowser_DefaultLister(t *testing.T) {
	dir := makeTree(t)
	b := NewBrowser(dir, false, nil)
	require.NoError(t, b.Refresh())
	assert.Len(t, b.Entries(), 5)
}
