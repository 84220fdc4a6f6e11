// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, TitleStyle.Render("pdm "+a.info.Version))
			fmt.Fprintln(out, RenderField("Commit", a.info.Commit))
			fmt.Fprintln(out, RenderField("Built", a.info.Date))
			fmt.Fprintln(out, RenderField("Go", runtime.Version()))
		},
	}
}
