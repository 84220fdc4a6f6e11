// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/pdm-tui/internal/logging"
	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/ui/editor"
	"github.com/jeranaias/pdm-tui/internal/ui/styles"
)

// runTUI starts the interactive editor.
func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	if !IsTTY() || !IsStdoutTTY() {
		return ErrNotTerminal
	}

	ctx := cmd.Context()
	log := logging.Component(ctx, "tui")

	machine, err := a.newMachine(ctx, args)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		editor.New(machine, styles.NewTheme(), *logging.FromContext(ctx)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	log.Info().Str("start_dir", machine.Browser().Dir()).Msg("editor starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	if doc := machine.Document(); doc != nil && doc.Dirty() {
		log.Warn().Str("path", doc.Path()).Msg("quit with unsaved changes")
	}
	log.Info().Msg("editor stopped")
	return nil
}

// newMachine builds the navigation state for the start path. A directory
// becomes the picker's start; a file, existing or not, is opened.
func (a *app) newMachine(ctx context.Context, args []string) (*nav.Machine, error) {
	opts := nav.Options{
		StartDir:     a.cfg.Explorer.StartDir,
		ShowHidden:   a.cfg.Explorer.ShowHidden,
		ProbeTimeout: a.cfg.ProbeTimeout(),
		Logger:       *logging.FromContext(ctx),
	}

	var open string
	if len(args) == 1 {
		target, err := filepath.Abs(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot resolve %s: %w", args[0], err)
		}
		info, err := os.Stat(target)
		switch {
		case err == nil && info.IsDir():
			opts.StartDir = target
		case err == nil || errors.Is(err, os.ErrNotExist):
			opts.StartDir = filepath.Dir(target)
			open = target
		default:
			return nil, fmt.Errorf("cannot use %s: %w", args[0], err)
		}
	}

	m := nav.New(opts)
	if open != "" {
		if err := m.OpenFile(open); err != nil {
			return nil, err
		}
	}
	return m, nil
}
