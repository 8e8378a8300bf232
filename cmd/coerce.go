package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/ranges/internal/cli"
)

func newCoerceCmd() *cobra.Command {
	kind := cli.KindInt
	var minimum, maximum string
	coerceCmd := &cobra.Command{
		Use:   "coerce VALUE [EXPR...]",
		Short: "Clamp VALUE into a range or between --min and --max",
		Long: `Clamp VALUE into the range EXPR, or between the bounds given with --min and
--max. A bound that is not given leaves that side unconstrained. Swapped
bounds and empty ranges are rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lower, upper *string
			if cmd.Flags().Changed("min") {
				lower = &minimum
			}
			if cmd.Flags().Changed("max") {
				upper = &maximum
			}

			var got string
			var err error
			if len(args) > 1 {
				if lower != nil || upper != nil {
					return errors.Errorf("use either --min/--max or a range expression, not both")
				}
				var v cli.Value
				v, err = evaluate(kind, args[1:])
				if err != nil {
					return err
				}
				got, err = v.Coerce(args[0])
				if err != nil {
					return err
				}
			} else {
				got, err = cli.Coerce(kind, args[0], lower, upper)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
	addKindFlag(coerceCmd, &kind)
	coerceCmd.Flags().StringVar(&minimum, "min", "", "Lower bound")
	coerceCmd.Flags().StringVar(&maximum, "max", "", "Upper bound")
	return coerceCmd
}
