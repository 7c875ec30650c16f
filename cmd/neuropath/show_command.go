package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"neuropath/internal/config"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name...]",
		Short: "Print resolved configuration variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.ensureResolver()
			if err != nil {
				return err
			}

			rows := make([][]string, 0)
			for _, info := range resolver.Describe(args...) {
				rows = append(rows, []string{
					info.Name,
					info.Kind.String(),
					config.FormatValue(info.Value),
				})
			}

			out := cmd.OutOrStdout()
			snapshot, err := resolver.Snapshot()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Base data directory: %s\n", snapshot.BaseDir)
			fmt.Fprintln(out, renderTable([]string{"Name", "Kind", "Value"}, rows))
			return nil
		},
	}
}
