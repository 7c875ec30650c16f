package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that path-valued variables exist on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.ensureResolver()
			if err != nil {
				return err
			}

			results := resolver.VerifyPaths()
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No path-like variables found.")
				return nil
			}

			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			missing := 0
			for _, name := range names {
				exists := results[name]
				if !exists {
					missing++
				}
				path, _ := resolver.GetString(name)
				rows = append(rows, []string{name, yesNo(exists), path})
			}
			fmt.Fprintln(out, renderTable([]string{"Name", "Exists", "Path"}, rows))
			if missing > 0 {
				fmt.Fprintf(out, "%d of %d paths missing\n", missing, len(names))
			}
			return nil
		},
	}
}
