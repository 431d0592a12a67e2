package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var dirsPrefix string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the index from the listing and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.loadIndex()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, statsTable(idx.Stats()))

			if cmd.Flags().Changed("dirs") {
				for _, d := range idx.DirsWithPrefix(dirsPrefix) {
					fmt.Fprintln(out, d)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dirsPrefix, "dirs", "", "Also list indexed directories under this prefix")
	return cmd
}
