package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/swiftmangle/mangling"
	"github.com/skdltmxn/swiftmangle/node"
)

var roundtripQuiet bool

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [symbol...]",
	Short: "Decode and re-encode symbols",
	Long: `Decode each symbol, encode the tree again and decode the result.

For every symbol the canonical re-encoding is printed. When it differs
from the input, a character diff is shown. The command fails if any
re-encoding does not decode to the same tree.`,
	RunE: runRoundtrip,
}

func init() {
	roundtripCmd.Flags().BoolVarP(&roundtripQuiet, "quiet", "q", false, "only report symbols that do not survive the round trip")
}

var (
	insertColor = color.New(color.FgGreen, color.Underline).SprintFunc()
	deleteColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
	nodeEqual   = cmp.Comparer(func(a, b *node.Node) bool { return a.Equal(b) })
)

func runRoundtrip(cmd *cobra.Command, args []string) error {
	symbols, err := inputs(args)
	if err != nil {
		return fmt.Errorf("failed to read symbols: %w", err)
	}

	broken := 0
	for _, s := range symbols {
		ok, err := roundtrip(s)
		if err != nil {
			fmt.Fprintf(output, "%s %s: %s\n", errColor("FAIL"), s, err)
			broken++
			continue
		}
		if !ok {
			broken++
		}
	}
	if broken > 0 {
		return fmt.Errorf("%d of %d symbols did not round trip", broken, len(symbols))
	}
	return nil
}

// roundtrip reports whether s survives decode, encode and decode with an
// unchanged tree.
func roundtrip(s string) (bool, error) {
	first, err := decode(s)
	if err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}
	out, err := mangling.Encode(first, mangling.WithLogger(debugLogger()))
	if err != nil {
		return false, fmt.Errorf("encode: %w", err)
	}
	second, err := decode(out)
	if err != nil {
		return false, fmt.Errorf("decode of %q: %w", out, err)
	}

	same := cmp.Equal(first, second, nodeEqual)
	if roundtripQuiet && same {
		return true, nil
	}
	switch {
	case !same:
		fmt.Fprintf(output, "%s %s -> %s\n", errColor("DIFF"), s, out)
		fmt.Fprintln(output, cmp.Diff(first.ToValue(), second.ToValue()))
	case out == s:
		fmt.Fprintf(output, "same %s\n", s)
	default:
		fmt.Fprintf(output, "canonical %s\n  %s\n", out, charDiff(s, out))
	}
	return same, nil
}

func charDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	var sb strings.Builder
	for _, d := range dmp.DiffMain(from, to, false) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(insertColor(d.Text))
		case diffmatchpatch.DiffDelete:
			sb.WriteString(deleteColor(d.Text))
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
