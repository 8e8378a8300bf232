package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/ranges/internal/cli"
)

func newShowCmd() *cobra.Command {
	kind := cli.KindInt
	showCmd := &cobra.Command{
		Use:   "show EXPR...",
		Short: "Print the canonical form of a range expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evaluate(kind, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, v.String())
			fmt.Fprintf(out, "empty=%t hash=%d\n", v.IsEmpty(), v.Hash())
			return nil
		},
	}
	addKindFlag(showCmd, &kind)
	return showCmd
}
