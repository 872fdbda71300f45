package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"dsconf/internal/testkit"

	"github.com/spf13/cobra"
)

// gends generates random floating point datasets for exercising dsconf.
// Decorated output adds a comment header and 1-based row numbers, which
// works because dsconf can be pointed at column 2.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var decimals int
	var decorate bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "gends [flags] <num> <lower> <upper>",
		Short: "Generate a uniform random dataset for testing",
		Long: `Generate num random floating point numbers uniformly distributed in
[lower..upper], one per line. Use --seed for reproducible fixtures.

Generate at least 30 elements to enable standard-normal analysis in dsconf.

Example:
  gends -D -d 2 50 115 125`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.Atoi(args[0])
			if err != nil || num < 1 {
				return fmt.Errorf("invalid element count: %q", args[0])
			}
			lower, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid lower bound: %q", args[1])
			}
			upper, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid upper bound: %q", args[2])
			}
			if lower > upper {
				return fmt.Errorf("lower bound %g must not exceed upper bound %g", lower, upper)
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			values := testkit.UniformValues(num, lower, upper, seed)
			if decorate {
				fmt.Printf("# date = %s\n", time.Now().Format(time.RFC3339))
				fmt.Printf("# num = %d\n", num)
				fmt.Printf("# lower = %.3f\n", lower)
				fmt.Printf("# upper = %.3f\n", upper)
				fmt.Printf("# decimal places = %d\n", decimals)
				fmt.Print(testkit.DecoratedLines(values, decimals))
			} else {
				fmt.Print(testkit.Lines(values, decimals))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimal-places", "d", 3, "number of decimal places")
	cmd.Flags().BoolVarP(&decorate, "decorate", "D", false, "print header and line numbers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time-based)")

	return cmd
}
