// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the pdm packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync and rename
//   - ExistingMode: permission bits of a file, or a fallback when absent
//
// Display Width:
//   - TruncateWidth: cut a string to a terminal column budget
//   - PadWidth: pad or cut a string to exactly a column budget
//
// # Usage
//
//	mode := util.ExistingMode(path, 0600)
//	err := util.AtomicWriteFile(path, data, mode)
//
//	row := util.PadWidth(label, innerWidth)
package util
