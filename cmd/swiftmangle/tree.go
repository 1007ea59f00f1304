package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/swiftmangle/mangling"
	"github.com/skdltmxn/swiftmangle/node"
)

var treeKind string

var treeCmd = &cobra.Command{
	Use:   "tree <symbol>",
	Short: "Print the node tree of one symbol",
	Long: `Decode a single symbol and print its node tree.

The tree is printed as indented text, JSON or YAML depending on --format.
The JSON and YAML forms are accepted by the remangle command.

Use --kind to print only the first subtree of the given kind, together
with its own mangling.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeKind, "kind", "k", "", "print only the first subtree of this kind (e.g. BoundGenericStructure)")
}

func runTree(cmd *cobra.Command, args []string) error {
	n, err := decode(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode %q: %w", args[0], err)
	}
	if treeKind == "" {
		return writeTree(output, n)
	}

	kind, ok := node.ParseKind(treeKind)
	if !ok {
		return fmt.Errorf("unknown node kind: %s", treeKind)
	}
	match := func(n *node.Node) bool { return n.Is(kind) }
	sub := n.Find(match)
	if sub == nil {
		return fmt.Errorf("no %s node in %q", kind, args[0])
	}
	mangled, err := mangling.EncodeSubtree(n, match)
	if err != nil {
		theLog.Debug("subtree has no mangling", "kind", kind, "err", err)
	} else {
		fmt.Fprintf(output, "mangling: %s\n", mangled)
	}
	return writeTree(output, sub)
}
