package mangling

import (
	"log/slog"

	"github.com/skdltmxn/swiftmangle/internal/demangle"
	"github.com/skdltmxn/swiftmangle/internal/remangle"
	"github.com/skdltmxn/swiftmangle/node"
)

// Resolver resolves a symbolic reference met while decoding. index counts
// the references already resolved in the current symbol. Returning nil
// fails the decode.
type Resolver = demangle.Resolver

// EncodeResolver returns the tree a symbolic reference node stands for so
// the encoder can spell it out.
type EncodeResolver = remangle.Resolver

type opts struct {
	resolver       Resolver
	encodeResolver EncodeResolver
	punycode       bool
	cache          node.Interner
	workers        int
	logger         *slog.Logger
}

func newOpts(options []Option) *opts {
	o := &opts{punycode: true}
	for _, f := range options {
		f(o)
	}
	return o
}

func (o *opts) decodeOptions() demangle.Options {
	return demangle.Options{Resolver: o.resolver, Interner: o.cache, Logger: o.logger}
}

func (o *opts) encodeOptions() remangle.Options {
	return remangle.Options{Resolver: o.encodeResolver, Punycode: o.punycode, Logger: o.logger}
}

// Option configures decoding and encoding.
type Option func(*opts)

// WithResolver sets the resolver used for symbolic references while
// decoding.
func WithResolver(r Resolver) Option {
	return func(o *opts) { o.resolver = r }
}

// WithEncodeResolver sets the resolver used for symbolic reference nodes
// while encoding.
func WithEncodeResolver(r EncodeResolver) Option {
	return func(o *opts) { o.encodeResolver = r }
}

// WithPunycode controls whether non-ASCII identifiers are punycode encoded.
// It is on by default.
func WithPunycode(v bool) Option {
	return func(o *opts) { o.punycode = v }
}

// WithCache interns decoded subtrees in c. Structurally equal subtrees
// then share one instance, across calls too.
func WithCache(c node.Interner) Option {
	return func(o *opts) { o.cache = c }
}

// WithWorkers sets the number of goroutines DecodeBatchParallel uses.
func WithWorkers(n int) Option {
	return func(o *opts) { o.workers = n }
}

// WithLogger routes decoder and encoder traces to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *opts) { o.logger = l }
}
