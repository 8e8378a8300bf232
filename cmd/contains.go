package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/ranges/internal/cli"
)

func newContainsCmd() *cobra.Command {
	kind := cli.KindInt
	containsCmd := &cobra.Command{
		Use:   "contains VALUE EXPR...",
		Short: "Report whether VALUE is an element of a range or progression",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evaluate(kind, args[1:])
			if err != nil {
				return err
			}
			ok, err := v.Contains(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	addKindFlag(containsCmd, &kind)
	return containsCmd
}
