// Command fincalc is a small financial calculator for compound interest.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"assetboard/internal/fincalc"
)

type calculateCmd struct {
	frequency float64
}

func (*calculateCmd) Name() string     { return "calculate" }
func (*calculateCmd) Synopsis() string { return "calculate compound interest" }
func (*calculateCmd) Usage() string {
	return `fincalc calculate [-f <frequency>] <principal> <annualRate> <years>

  Calculates the final capital for the given principal, annual rate and
  number of years.
`
}

func (c *calculateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.frequency, "f", 1, "Compounding frequency per year (e.g., 1 for annually, 12 for monthly)")
}

func (c *calculateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	args := make([]float64, 3)
	for i, raw := range f.Args() {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: All arguments must be valid numbers.")
			return subcommands.ExitUsageError
		}
		args[i] = v
	}

	result := fincalc.CompoundInterest(args[0], args[1], args[2], c.frequency)
	fmt.Printf("Final Capital: %.2f\n", result)
	return subcommands.ExitSuccess
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&calculateCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
