// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the pdm command line.
//
// Without a subcommand pdm starts the interactive editor. The subcommands
// work on a config file without the TUI:
//
//	pdm [path]                   edit; path is a start directory or a file
//	pdm show <file>              print the file as pdm would save it
//	pdm status <file>            check whether the daemon is running
//	pdm options [--category C]   list the option catalog
//	pdm settings [get|set|path]  inspect or change pdm's own settings
//	pdm version                  print build information
//
// Every command loads the settings from ~/.pdm/config.toml (or --settings)
// and puts a logger on the command context.
package cli
