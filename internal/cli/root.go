// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jeranaias/pdm-tui/internal/config"
	"github.com/jeranaias/pdm-tui/internal/logging"
)

// BuildInfo identifies the binary. It is set from main at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by the commands of one invocation.
type app struct {
	info BuildInfo

	settingsPath string
	logLevel     string

	cfg *config.Config

	// closeLog is nil while no log file is open.
	closeLog func() error
}

// Execute runs pdm with the process arguments.
func Execute(info BuildInfo) error {
	a := &app{info: info}
	return a.execute(a.rootCmd())
}

// execute runs root and closes the log file afterwards. Cobra skips the
// post-run hooks when a command fails.
func (a *app) execute(root *cobra.Command) error {
	defer a.closeLogFile()
	return root.Execute()
}

// NewRootCmd builds the pdm command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	a := &app{info: info}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pdm [path]",
		Short: "Edit bitcoin.conf in the terminal",
		Long: `pdm is a terminal editor for bitcoind's bitcoin.conf.

Browse to a config file, review every option grouped by subsystem, toggle
or edit values, and save. Only enabled options are written.

With a directory argument the file picker starts there. With a file
argument that file is opened directly; a missing file starts from the
defaults and is created on save.`,
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.settingsPath, "settings", "", "settings file (default ~/.pdm/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error or none")

	root.AddCommand(
		newVersionCmd(a),
		newShowCmd(),
		newStatusCmd(a),
		newOptionsCmd(),
		newSettingsCmd(a),
	)
	return root
}

// setup loads the settings and installs the logger on the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadSettings()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	a.cfg = cfg

	logger := a.openLog(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithContext(ctx, logger.With().Str("command", cmd.Name()).Logger()))
	return nil
}

func (a *app) loadSettings() (*config.Config, error) {
	if a.settingsPath != "" {
		return config.LoadFromPath(a.settingsPath)
	}
	return config.Load()
}

// openLog opens the log file. A log that cannot be opened disables logging
// rather than failing the command.
func (a *app) openLog(cmd *cobra.Command) zerolog.Logger {
	path, err := a.cfg.LogFilePath()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: logging disabled: "+err.Error()))
		return zerolog.Nop()
	}
	logger, closer, err := logging.New(logging.Config{Level: a.cfg.Log.Level, File: path, Format: a.cfg.Log.Format})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: logging disabled: "+err.Error()))
		return zerolog.Nop()
	}
	a.closeLog = closer
	return logger
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	return a.closeLogFile()
}

// closeLogFile closes the log once. Later calls do nothing.
func (a *app) closeLogFile() error {
	if a.closeLog == nil {
		return nil
	}
	closer := a.closeLog
	a.closeLog = nil
	return closer()
}

// settingsFile returns the settings path in use.
func (a *app) settingsFile() (string, error) {
	if a.settingsPath != "" {
		return a.settingsPath, nil
	}
	return config.ConfigPathTOML()
}
