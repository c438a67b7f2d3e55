package cli

import (
	"fmt"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var flags pileFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute pile metrics without storing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := flags.group()
			g.Name = "calc"
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.FormatMetrics("Pile metrics", calc.ForGroup(&g)))
			if err := g.Validate(); err != nil {
				fmt.Fprintln(out, formatter.Notice(err.Error()))
			}
			return nil
		},
	}

	flags.register(cmd.Flags(), false)
	_ = cmd.MarkFlagRequired("od")
	_ = cmd.MarkFlagRequired("wt")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
