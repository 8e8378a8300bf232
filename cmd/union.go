package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/ranges/internal/cli"
)

func newUnionCmd() *cobra.Command {
	var probes []int64
	unionCmd := &cobra.Command{
		Use:   "union RANGE...",
		Short: "Normalize a union of long ranges",
		Long: `Normalize a union of long ranges given as N or N..M tokens. Empty ranges are
dropped, and overlapping or adjacent ranges are merged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := cli.ParseUnion(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if u.IsEmpty() {
				fmt.Fprintln(out, "empty")
			} else {
				fmt.Fprintln(out, u.String())
			}
			for _, n := range probes {
				fmt.Fprintf(out, "%d: %t\n", n, u.Contains(n))
			}
			return nil
		},
	}
	unionCmd.Flags().Int64SliceVar(&probes, "contains", nil, "Values to test against the union")
	return unionCmd
}
