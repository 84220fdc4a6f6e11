// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitcoin.conf")
	data := []byte("server=1\n")

	if err := AtomicWriteFile(path, data, 0600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", content, data)
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "bitcoin.conf")

	if err := AtomicWriteFile(path, []byte("x=1\n"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitcoin.conf")

	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("updated"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", content)
	}
}

func TestAtomicWriteFile_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated rights on Windows")
	}
	target := filepath.Join(t.TempDir(), "bitcoin.conf")
	if err := os.WriteFile(target, []byte("old"), 0640); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(t.TempDir(), "bitcoin.conf")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(link, []byte("new"), 0640); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("link was replaced by a regular file")
	}
	content, _ := os.ReadFile(target)
	if string(content) != "new" {
		t.Errorf("target not updated: got %q", content)
	}
	entries, _ := os.ReadDir(filepath.Dir(link))
	if len(entries) != 1 {
		t.Errorf("expected only the link in its directory, found %d entries", len(entries))
	}
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bitcoin.conf")

	if err := AtomicWriteFile(path, []byte("a=1\n"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestAtomicWriteFile_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	path := filepath.Join(t.TempDir(), "bitcoin.conf")

	if err := AtomicWriteFile(path, []byte("rpcpassword=x\n"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %o, want 0600", info.Mode().Perm())
	}
}

func TestAtomicWriteFile_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "conf")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(target, []byte("x"), 0644); err == nil {
		t.Error("expected error when replacing a non-empty directory")
	}
}

func TestExistingMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "bitcoin.conf")

	if got := ExistingMode(path, 0600); got != 0600 {
		t.Errorf("missing file: got %o, want fallback 0600", got)
	}

	if err := os.WriteFile(path, nil, 0640); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0640); err != nil {
		t.Fatal(err)
	}
	if got := ExistingMode(path, 0600); got != 0640 {
		t.Errorf("existing file: got %o, want 0640", got)
	}

	if got := ExistingMode(dir, 0600); got != 0600 {
		t.Errorf("directory: got %o, want fallback 0600", got)
	}
}

// =============================================================================
// WIDTH TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "rpcport", 10, "rpcport"},
		{"exact", "rpcport", 7, "rpcport"},
		{"cut", "rpcallowip", 6, "rpcal…"},
		{"zero", "abc", 0, ""},
		{"one column", "abc", 1, "a"},
		{"wide chars", "日本語テキスト", 7, "日本語…"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateWidth(tc.input, tc.width)
			if got != tc.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tc.input, tc.width, got, tc.want)
			}
			if StringWidth(got) > tc.width {
				t.Errorf("result %q is %d columns, budget %d", got, StringWidth(got), tc.width)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"", 5},
		{"abc", 5},
		{"abcdefgh", 5},
		{"日本語", 5},
	}
	for _, tc := range tests {
		got := PadWidth(tc.input, tc.width)
		if StringWidth(got) != tc.width {
			t.Errorf("PadWidth(%q, %d) = %q (%d columns)", tc.input, tc.width, got, StringWidth(got))
		}
	}

	if got := PadWidth("abc", 0); got != "" {
		t.Errorf("PadWidth with zero width = %q, want empty", got)
	}
}
