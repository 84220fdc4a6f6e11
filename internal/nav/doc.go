// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav is the screen and selection state machine of the editor.
//
// A Machine moves between four screens:
//
//	Main ──confirm──▶ FileExplorer ──open file──▶ Editing ──confirm──▶ EditingValue
//	 ▲                    │  ▲                      │  ▲                   │
//	 └──────cancel────────┘  └─────(on failure)     │  └─confirm/cancel────┘
//	 ▲                                              │
//	 └──────────────────cancel──────────────────────┘
//
// Keyboard input arrives as Events; pointer presses go through Press, which
// maps screen cells to the same selection indices the keyboard moves. The
// machine owns the open nodeconf.Document and mutates it only through the
// document's methods.
package nav
