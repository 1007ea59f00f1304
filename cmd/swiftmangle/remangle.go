package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/swiftmangle/mangling"
	"github.com/skdltmxn/swiftmangle/node"
)

var remanglePunycode bool

var remangleCmd = &cobra.Command{
	Use:   "remangle [tree-file]",
	Short: "Encode a node tree read as YAML or JSON",
	Long: `Read a node tree in the form printed by "tree --format yaml" or
"tree --format json" and print its canonical mangling.

The tree is read from the given file, or from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemangle,
}

func init() {
	remangleCmd.Flags().BoolVar(&remanglePunycode, "punycode", true, "punycode-encode non-ASCII identifiers")
}

func runRemangle(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read tree: %w", err)
	}

	// JSON is valid YAML, so one decoder serves both forms.
	var v node.Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to parse tree: %w", err)
	}
	n, err := node.FromValue(&v)
	if err != nil {
		return err
	}

	s, err := mangling.Encode(n,
		mangling.WithPunycode(remanglePunycode),
		mangling.WithLogger(debugLogger()))
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	fmt.Fprintln(output, s)
	return nil
}
