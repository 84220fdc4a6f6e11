// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides loading and management of the pdm settings.
//
// These are the settings of the editor itself, not of the node whose
// bitcoin.conf it edits.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (PDM_*)
//   - ~/.pdm/config.toml, or the file given with --settings
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	timeout := cfg.ProbeTimeout()
package config
