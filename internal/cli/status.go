// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/pdm-tui/internal/logging"
	"github.com/jeranaias/pdm-tui/internal/nav"
	"github.com/jeranaias/pdm-tui/internal/nodeconf"
	"github.com/jeranaias/pdm-tui/internal/probe"
)

func newStatusCmd(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "status <file>",
		Short: "Check whether the daemon of a config file is running",
		Long: `Read the pid file named by the config's pid option (relative to its
datadir, or to the config's directory) and check the process.

With --check the command fails unless the daemon is running.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.probeFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printStatus(cmd, res)
			if check && res.State != probe.Running {
				return fmt.Errorf("bitcoind is %s", res.State)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "exit non-zero unless the daemon is running")
	return cmd
}

func (a *app) probeFile(ctx context.Context, path string) (probe.Result, error) {
	doc, err := nodeconf.NewParser(*logging.FromContext(ctx)).Load(path)
	if err != nil {
		return probe.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.ProbeTimeout())
	defer cancel()

	res := probe.Probe(ctx, nav.TargetFor(doc))
	log := logging.Component(ctx, "status")
	log.Debug().
		Str("path", path).
		Stringer("state", res.State).
		Msg("daemon probed")
	return res, nil
}

func printStatus(cmd *cobra.Command, res probe.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("bitcoind"))
	fmt.Fprintln(out, RenderField("State", RenderState(res.State)))
	if res.PID > 0 {
		fmt.Fprintln(out, RenderField("PID", strconv.Itoa(res.PID)))
	}
	if res.PIDFile != "" {
		fmt.Fprintln(out, RenderField("PID file", res.PIDFile))
	}
	if res.Err != nil {
		fmt.Fprintln(out, RenderField("Reason", DimStyle.Render(res.Err.Error())))
	}
}
