package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/ranges/internal/cli"
	"github.com/vipcxj/ranges/ranges"
)

func newSeqCmd() *cobra.Command {
	kind := cli.KindInt
	var format string
	var limit int
	seqCmd := &cobra.Command{
		Use:   "seq EXPR...",
		Short: "Print the elements of an integral range or progression",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !kind.IsIntegral() {
				return errors.Errorf("cannot enumerate %s ranges, use an int, long or char kind", kind)
			}
			return cli.CheckFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evaluate(kind, args)
			if err != nil {
				return err
			}
			values, err := v.Elements(ranges.CoerceAtLeast(limit, 0))
			if err != nil {
				return err
			}
			s, err := cli.FormatValues(format, values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	addKindFlag(seqCmd, &kind)
	seqCmd.Flags().StringVarP(&format, "format", "f", "space", "Output format, one of: space, comma, newline, json")
	seqCmd.Flags().IntVarP(&limit, "limit", "n", 1000, "Maximum number of elements to print, 0 for no limit")
	return seqCmd
}
