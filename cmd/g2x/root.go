package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "g2x",
		Short:         "Resolve legacy gallery paths against an exported file listing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVarP(&ctx.listingFlag, "listing", "l", "", "File listing, one relative path per line")
	flags.StringVar(&ctx.strategyFlag, "strategy", "", "Fuzzy strategy: single or consensus")
	flags.Float64Var(&ctx.thresholdFlag, "threshold", 0, "Acceptance score for the single strategy")
	flags.IntVarP(&ctx.workersFlag, "workers", "w", 0, "Parallel workers for batch resolution")
	flags.StringSliceVar(&ctx.ignoreFlag, "ignore", nil, "Gitignore-style patterns to drop from the listing")
	flags.BoolVar(&ctx.plainFlag, "plain", false, "Single strategy without fuzzy scoring")
	flags.BoolVarP(&ctx.verboseFlag, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(newIndexCommand(ctx))
	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))

	return rootCmd
}
