package main

import (
	"fmt"

	"github.com/ZanzyTHEbar/g2x/g2x/resolve"

	"github.com/spf13/cobra"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve stored gallery paths to files in the listing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.loadIndex()
			if err != nil {
				return err
			}
			r := ctx.resolver()
			strategy := ctx.strategy()
			out := cmd.OutOrStdout()

			for _, arg := range args {
				m := r.Resolve(resolve.ParsePath(arg), idx, strategy)
				if !m.Resolved() {
					fmt.Fprintf(out, "%s\t-\tunresolved\n", arg)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s %s\n", arg, m.Path, m.Method, formatScore(m))
			}
			return nil
		},
	}
}
