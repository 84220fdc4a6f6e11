// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components renders the pieces of the editor screen.
//
// Every component renders to an exact cell size: a Box of Width x Height
// produces Height lines each Width cells wide. The editor relies on this to
// record where regions were drawn for mouse hit testing.
package components
