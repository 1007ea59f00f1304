package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/swiftmangle/mangling"
	"github.com/skdltmxn/swiftmangle/node"
)

var (
	batchWorkers     int
	batchSharedCache bool
	batchShowTrees   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [symbol-file]",
	Short: "Decode many symbols at once",
	Long: `Decode a list of symbols and report a summary.

The list is read from the given file or from standard input. Files ending
in .yaml or .yml hold a YAML sequence of symbols; anything else holds one
symbol per line.

Symbols are decoded on --workers goroutines. Each worker interns subtrees
in its own cache unless --shared-cache is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "number of decoding goroutines (0 = GOMAXPROCS)")
	batchCmd.Flags().BoolVar(&batchSharedCache, "shared-cache", false, "share one locked cache between workers")
	batchCmd.Flags().BoolVar(&batchShowTrees, "trees", false, "print the tree of every decoded symbol")
}

func readBatch(args []string) ([]string, error) {
	if len(args) == 0 {
		return readLines(os.Stdin)
	}
	switch filepath.Ext(args[0]) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		var symbols []string
		if err := yaml.Unmarshal(data, &symbols); err != nil {
			return nil, err
		}
		return symbols, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func runBatch(cmd *cobra.Command, args []string) error {
	symbols, err := readBatch(args)
	if err != nil {
		return fmt.Errorf("failed to read symbols: %w", err)
	}

	opts := []mangling.Option{
		mangling.WithWorkers(batchWorkers),
		mangling.WithLogger(debugLogger()),
	}
	var shared *node.LockedCache
	if batchSharedCache {
		shared = node.NewLockedCache()
		opts = append(opts, mangling.WithCache(shared))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	results, err := mangling.DecodeBatchParallel(ctx, symbols, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(output, "%s %s: %v\n", errColor("FAIL"), symbols[i], r.Err)
			continue
		}
		if batchShowTrees {
			fmt.Fprintf(output, "%s\n", symbols[i])
			if err := writeTree(output, r.Node); err != nil {
				return err
			}
		}
	}

	attrs := []any{
		"symbols", len(symbols),
		"decoded", len(symbols) - failed,
		"failed", failed,
		"elapsed", elapsed.Round(time.Microsecond),
	}
	if shared != nil {
		attrs = append(attrs, "unique_nodes", shared.Len())
	}
	theLog.Info("batch done", attrs...)
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols failed to decode", failed, len(symbols))
	}
	return nil
}
