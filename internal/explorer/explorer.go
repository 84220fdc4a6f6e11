// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package explorer lists directories for the config file picker.
package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParentName is the name of the synthetic entry leading one directory up.
const ParentName = ".."

// Entry is one row of a directory listing.
type Entry struct {
	Name     string
	Path     string
	IsDir    bool
	IsParent bool
}

// Lister produces the listing of a directory.
type Lister func(dir string, showHidden bool) ([]Entry, error)

// List returns the children of dir: directories first, then files, each
// group sorted by name. A ".." entry leads the list unless dir is a root.
// Symlinks are classified by their target.
func List(dir string, showHidden bool) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	dirents, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", abs, err)
	}

	entries := make([]Entry, 0, len(dirents)+1)
	for _, de := range dirents {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(abs, name)
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{Name: name, Path: path, IsDir: isDir})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	if parent := filepath.Dir(abs); parent != abs {
		entries = append([]Entry{{Name: ParentName, Path: parent, IsDir: true, IsParent: true}}, entries...)
	}
	return entries, nil
}
