package mangling

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/skdltmxn/swiftmangle/internal/demangle"
	"github.com/skdltmxn/swiftmangle/node"
)

// Result is the outcome of decoding one batch item. Exactly one of Node
// and Err is set.
type Result struct {
	Node *node.Node
	Err  error
}

// DecodeBatch decodes every symbol with one cache shared across the batch,
// so subtrees common to several symbols are stored once. Failures are
// reported per item. Without WithCache a fresh node.Cache is used.
func DecodeBatch(symbols []string, options ...Option) []Result {
	o := newOpts(options)
	if o.cache == nil {
		o.cache = node.NewCache()
	}
	results := make([]Result, len(symbols))
	decodeRange(symbols, results, o.decodeOptions())
	return results
}

// DecodeBatchParallel decodes symbols on several goroutines. The input is
// split into contiguous chunks, one per worker. Without WithCache every
// worker interns into its own node.Cache; a cache passed with WithCache is
// shared by all workers and must be safe for concurrent use, such as a
// node.LockedCache.
//
// Per-item failures are reported in the results. The returned error is
// only set when ctx is done before all chunks finished.
func DecodeBatchParallel(ctx context.Context, symbols []string, options ...Option) ([]Result, error) {
	o := newOpts(options)
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(symbols))
	results := make([]Result, len(symbols))
	if workers == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(symbols) + workers - 1) / workers
	for start := 0; start < len(symbols); start += chunk {
		end := min(start+chunk, len(symbols))
		dopts := o.decodeOptions()
		if dopts.Interner == nil {
			dopts.Interner = node.NewCache()
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				decodeRange(symbols[i:i+1], results[i:i+1], dopts)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func decodeRange(symbols []string, results []Result, opts demangle.Options) {
	for i, s := range symbols {
		n, err := demangle.Auto(s, false, opts)
		results[i] = Result{Node: n, Err: err}
	}
}
