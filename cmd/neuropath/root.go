package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var baseDirFlag string
	var keywordFlag string
	var overridesFlag string
	var logLevelFlag string
	var verboseFlag bool

	ctx := newCommandContext(&baseDirFlag, &keywordFlag, &overridesFlag, &logLevelFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "neuropath",
		Short:         "Inspect the pipeline's resolved configuration variables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipResolve(cmd) {
				return nil
			}
			_, err := ctx.ensureResolver()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&baseDirFlag, "base-dir", "b", "", "Base data directory (explicit mode)")
	rootCmd.PersistentFlags().StringVarP(&keywordFlag, "keyword", "k", "", "Keyword segment to locate the base directory in the working directory")
	rootCmd.PersistentFlags().StringVarP(&overridesFlag, "overrides", "c", "", "Path to a TOML overrides file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Emit informational notices during initialization")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
