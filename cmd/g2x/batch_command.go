package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ZanzyTHEbar/g2x/g2x/batch"

	"github.com/spf13/cobra"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var onlyUnresolved bool

	cmd := &cobra.Command{
		Use:   "batch <references>",
		Short: "Resolve a file of id<TAB>path references in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := batch.ReadReferences(args[0])
			if err != nil {
				return err
			}
			idx, err := ctx.loadIndex()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			runner := batch.NewRunner(ctx.resolver(), idx, ctx.strategy(), ctx.cfg.Batch.Workers, ctx.logger())
			results, report, runErr := runner.Run(runCtx, refs)

			out := cmd.OutOrStdout()
			if rendered, rows := resultsTable(results, onlyUnresolved); rows > 0 {
				fmt.Fprintln(out, rendered)
			}
			fmt.Fprintln(out, summaryTable(report))

			return runErr
		},
	}

	cmd.Flags().BoolVar(&onlyUnresolved, "only-unresolved", false, "Only list references that did not resolve")
	return cmd
}
