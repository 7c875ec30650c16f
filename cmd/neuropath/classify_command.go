package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"neuropath/internal/cfgvars"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "classify <series-description>...",
		Short:       "Classify DICOM series descriptions into modalities",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipResolve": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, description := range args {
				modality, ok := cfgvars.Classify(description)
				if !ok {
					modality = "(unclassified)"
				}
				rows = append(rows, []string{description, modality})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Series Description", "Modality"}, rows))
			return nil
		},
	}
}
