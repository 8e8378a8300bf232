package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/ranges/internal/cli"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "ranges",
		Short: "Evaluate closed ranges, progressions and clamps",
		Long: `ranges evaluates range expressions such as

  1..10
  10 downTo 1 step 3
  a..z step 2 reversed
  0.5..1.5

in one element kind (int, long, char, float, double or string).
Negative values must follow a "--" argument.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetupLogger(os.Stderr, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newShowCmd(), newSeqCmd(), newContainsCmd(), newCoerceCmd(), newUnionCmd())
	return rootCmd
}

// Execute runs the command line and returns the exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func addKindFlag(cmd *cobra.Command, kind *cli.Kind) {
	cmd.Flags().VarP(kind, "kind", "k", "Element kind, one of: "+strings.Join(cli.KindStrings(), ", "))
}

func evaluate(kind cli.Kind, args []string) (cli.Value, error) {
	e, err := cli.ParseExpr(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	return cli.Evaluate(kind, e)
}
