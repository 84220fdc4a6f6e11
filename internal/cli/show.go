// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/pdm-tui/internal/logging"
	"github.com/jeranaias/pdm-tui/internal/nodeconf"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a config file as pdm would save it",
		Long: `Print the enabled options of a config file, grouped by category,
exactly as saving it from the editor would write it.

Warnings about a missing or unparseable file and about keys set in more
than one section go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	parser := nodeconf.NewParser(*logging.FromContext(cmd.Context()))

	res, err := parser.Parse(path)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if res.Defaulted {
		fmt.Fprintln(stderr, WarningStyle.Render(fmt.Sprintf("Warning: %s: %s; showing defaults", path, res.Reason)))
	}
	for _, key := range res.Shadowed {
		fmt.Fprintln(stderr, WarningStyle.Render(fmt.Sprintf("Warning: %s is set more than once; only one value is kept", key)))
	}

	fmt.Fprint(cmd.OutOrStdout(), nodeconf.NewDocument(path, res.Entries).Text())
	return nil
}
