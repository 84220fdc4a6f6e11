// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jeranaias/pdm-tui/internal/schema"
)

func newOptionsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the options pdm knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories := schema.Categories()
			if category != "" {
				c, ok := schema.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q, want one of: %s", category, strings.Join(categoryNames(), ", "))
				}
				categories = []schema.Category{c}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tDEFAULT\tKIND\tCATEGORY\tDESCRIPTION")
			for _, c := range categories {
				for _, o := range schema.ByCategory(c) {
					def := o.Default
					if def == "" {
						def = "-"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.Key, def, o.Kind, o.Category, o.Description)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list options of this category")
	return cmd
}

func categoryNames() []string {
	var names []string
	for _, c := range schema.Categories() {
		names = append(names, c.String())
	}
	return names
}
