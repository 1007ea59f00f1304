package remangle

import (
	"hash/maphash"

	"github.com/skdltmxn/swiftmangle/internal/subst"
	"github.com/skdltmxn/swiftmangle/node"
)

const (
	// hashCacheSize is the number of slots in the node hash cache. It must
	// be a power of two.
	hashCacheSize   = 512
	hashCacheProbes = 8

	inlineSubsts = 16
)

// entry is a substitutable subtree. Identifier entries compare by text
// only, so an Identifier and a Module with the same name share a slot.
type entry struct {
	n     *node.Node
	hash  uint64
	ident bool
}

func (e entry) equal(o entry) bool {
	if e.hash != o.hash || e.ident != o.ident {
		return false
	}
	if !e.ident {
		return e.n.Equal(o.n)
	}
	if e.n.Kind() == o.n.Kind() {
		return e.n.TextOrEmpty() == o.n.TextOrEmpty()
	}
	return identText(e.n) == identText(o.n)
}

// identText is the text an identifier is spelled with, operators already
// translated to letters.
func identText(n *node.Node) string {
	if n.Kind().IsOperator() {
		return subst.TranslateOperator(n.TextOrEmpty())
	}
	return n.TextOrEmpty()
}

func combine(h, v uint64) uint64 { return 33*h + v }

// substitutions assigns indexes to subtrees in the order they are first
// completed. The first inlineSubsts entries are kept in a slice; the rest
// live in a map keyed by hash. Both tiers assign the same indexes.
type substitutions struct {
	seed  maphash.Seed
	cache [hashCacheSize]entry

	inline   []entry
	overflow map[uint64][]int
	spilled  []entry
}

func newSubstitutions() *substitutions {
	return &substitutions{
		seed:   maphash.MakeSeed(),
		inline: make([]entry, 0, inlineSubsts),
	}
}

// entryFor returns the entry for n, computing its structural hash at most
// once per node and mode while the cache has room.
func (s *substitutions) entryFor(n *node.Node, ident bool) entry {
	return s.lookup(n, ident, 0)
}

func (s *substitutions) lookup(n *node.Node, ident bool, depth int) entry {
	h := maphash.Comparable(s.seed, n)
	if ident {
		h += 4
	}
	for probe := range uint64(hashCacheProbes) {
		i := (h + probe) & (hashCacheSize - 1)
		if s.cache[i].n == nil {
			e := entry{n: n, hash: s.hashNode(n, ident, depth), ident: ident}
			s.cache[i] = e
			return e
		}
		if s.cache[i].n == n && s.cache[i].ident == ident {
			return s.cache[i]
		}
	}
	return entry{n: n, hash: s.hashNode(n, ident, depth), ident: ident}
}

func (s *substitutions) hashNode(n *node.Node, ident bool, depth int) uint64 {
	var h uint64
	if ident {
		h = combine(h, uint64(node.KindIdentifier))
		for _, r := range identText(n) {
			h = combine(h, uint64(r))
		}
		return h
	}
	h = combine(h, uint64(n.Kind()))
	if idx, ok := n.Index(); ok {
		h = combine(h, idx)
	} else if text, ok := n.Text(); ok {
		for _, r := range text {
			h = combine(h, uint64(r))
		}
	}
	// The hash only filters candidates; equal settles the match, so
	// subtrees past the depth limit may be left out.
	if depth >= MaxDepth {
		return h
	}
	for i := range n.NumChildren() {
		h = combine(h, s.lookup(n.Child(i), false, depth+1).hash)
	}
	return h
}

func (s *substitutions) find(e entry) (int, bool) {
	for i, o := range s.inline {
		if o.equal(e) {
			return i, true
		}
	}
	for _, i := range s.overflow[e.hash] {
		if s.spilled[i].equal(e) {
			return inlineSubsts + i, true
		}
	}
	return 0, false
}

func (s *substitutions) add(e entry) {
	if _, ok := s.find(e); ok {
		return
	}
	if len(s.inline) < inlineSubsts {
		s.inline = append(s.inline, e)
		return
	}
	if s.overflow == nil {
		s.overflow = make(map[uint64][]int)
	}
	s.overflow[e.hash] = append(s.overflow[e.hash], len(s.spilled))
	s.spilled = append(s.spilled, e)
}

// Len returns the number of substitutions recorded.
func (s *substitutions) Len() int { return len(s.inline) + len(s.spilled) }
