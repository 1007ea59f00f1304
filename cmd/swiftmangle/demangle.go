package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var demangleKeepGoing bool

var demangleCmd = &cobra.Command{
	Use:   "demangle [symbol...]",
	Short: "Decode symbols and print their node trees",
	Long: `Decode each symbol and print its node tree.

Without arguments, symbols are read from standard input, one per line.
Use --type to decode bare type manglings such as "SaySiG".`,
	RunE: runDemangle,
}

func init() {
	demangleCmd.Flags().BoolVarP(&demangleKeepGoing, "keep-going", "k", false, "report failures and continue with the next symbol")
}

func runDemangle(cmd *cobra.Command, args []string) error {
	symbols, err := inputs(args)
	if err != nil {
		return fmt.Errorf("failed to read symbols: %w", err)
	}

	failed := 0
	for i, s := range symbols {
		if i > 0 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "%s\n", s)
		n, err := decode(s)
		if err != nil {
			if !demangleKeepGoing {
				return fmt.Errorf("failed to decode %q: %w", s, err)
			}
			fmt.Fprintf(output, "%s\n", errColor(err))
			failed++
			continue
		}
		if err := writeTree(output, n); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols failed to decode", failed, len(symbols))
	}
	return nil
}
