// Package remangle turns node trees back into mangled Swift symbols.
//
// The encoder walks the tree depth first and writes the postfix grammar the
// demangler reads. Whenever a subtree has been written before it is
// replaced by an 'A' back-reference, and identifiers share words through the
// same 26-entry word table the demangler rebuilds. The output is therefore
// the canonical, maximally compressed spelling of a tree.
package remangle

import (
	"bytes"
	"log/slog"
	"strconv"

	"github.com/skdltmxn/swiftmangle/internal/debug"
	"github.com/skdltmxn/swiftmangle/internal/subst"
	"github.com/skdltmxn/swiftmangle/node"
)

// MaxDepth bounds the recursion of a single encode.
const MaxDepth = 1024

// Resolver maps a symbolic reference node to the tree it stands for. The
// returned tree is encoded in place of the reference.
type Resolver func(ref *node.Node) (*node.Node, error)

// Options configure a single encode.
type Options struct {
	Resolver Resolver
	// Punycode spells non-ASCII identifiers with the "00" punycode form.
	// Without it their scalars are written verbatim.
	Punycode bool
	Logger   *slog.Logger
}

// Encode returns the mangling of the tree rooted at n.
func Encode(n *node.Node, opts Options) (string, error) {
	r := newRemangler(opts)
	if err := r.mangle(n, 0); err != nil {
		r.trace("encode failed", "kind", kindOf(n), "err", err)
		return "", err
	}
	return r.buf.String(), nil
}

type remangler struct {
	buf    bytes.Buffer
	merger subst.Merger
	substs *substitutions

	// words holds the identifier words written so far, in the order the
	// demangler will collect them.
	words []string

	resolver Resolver
	punycode bool
	log      *slog.Logger
}

func newRemangler(opts Options) *remangler {
	r := &remangler{
		substs:   newSubstitutions(),
		resolver: opts.Resolver,
		punycode: opts.Punycode,
		log:      opts.Logger,
	}
	if r.log == nil && debug.Encode() {
		r.log = debug.Logger()
	}
	return r
}

func (r *remangler) trace(msg string, args ...any) {
	if r.log != nil {
		r.log.Debug(msg, args...)
	}
}

func kindOf(n *node.Node) node.Kind {
	if n == nil {
		return node.KindUnknown
	}
	return n.Kind()
}

func (r *remangler) append(s string) { r.buf.WriteString(s) }

func (r *remangler) appendByte(c byte) { r.buf.WriteByte(c) }

func (r *remangler) appendUint(v uint64) { r.buf.WriteString(strconv.FormatUint(v, 10)) }

// mangleIndex writes 0 as "_" and n as "<n-1>_".
func (r *remangler) mangleIndex(v uint64) {
	if v != 0 {
		r.appendUint(v - 1)
	}
	r.appendByte('_')
}

func (r *remangler) listSeparator(first *bool) {
	if *first {
		r.appendByte('_')
		*first = false
	}
}

func (r *remangler) endOfList(first bool) {
	if first {
		r.appendByte('y')
	}
}

func (r *remangler) mangle(n *node.Node, depth int) error {
	if n == nil {
		return invalid(nil, "nil node")
	}
	if depth > MaxDepth {
		return newError(TooComplex, n)
	}
	if code, ok := singleChildCodes[n.Kind()]; ok {
		if err := r.mangleSingleChild(n, depth+1); err != nil {
			return err
		}
		r.append(code)
		return nil
	}
	if code, ok := childrenCodes[n.Kind()]; ok {
		if err := r.mangleChildren(n, depth+1); err != nil {
			return err
		}
		r.append(code)
		return nil
	}
	if code, ok := reversedCodes[n.Kind()]; ok {
		if err := r.mangleChildrenReversed(n, depth+1); err != nil {
			return err
		}
		r.append(code)
		return nil
	}
	if code, ok := fixedCodes[n.Kind()]; ok {
		r.append(code)
		return nil
	}
	if code, ok := accessorCodes[n.Kind()]; ok {
		return r.mangleAbstractStorage(n.FirstChild(), code, depth+1)
	}
	if _, ok := unsupported[n.Kind()]; ok {
		return newError(UnsupportedNodeKind, n)
	}
	return r.dispatch(n, depth)
}

func (r *remangler) mangleChildren(n *node.Node, depth int) error {
	for i := range n.NumChildren() {
		if err := r.mangle(n.Child(i), depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *remangler) mangleChildrenReversed(n *node.Node, depth int) error {
	for i := n.NumChildren() - 1; i >= 0; i-- {
		if err := r.mangle(n.Child(i), depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *remangler) mangleSingleChild(n *node.Node, depth int) error {
	if n.NumChildren() != 1 {
		return &Error{Kind: MultipleChildNodes, Node: n}
	}
	return r.mangle(n.Child(0), depth)
}

func (r *remangler) mangleChild(n *node.Node, i, depth int) error {
	c := n.Child(i)
	if c == nil {
		return missingChild(n, i)
	}
	return r.mangle(c, depth)
}

// child returns the i-th child or a MissingChildNode error.
func child(n *node.Node, i int) (*node.Node, error) {
	if n == nil {
		return nil, invalid(nil, "nil node")
	}
	c := n.Child(i)
	if c == nil {
		return nil, missingChild(n, i)
	}
	return c, nil
}

// path follows a chain of child indexes.
func path(n *node.Node, idx ...int) (*node.Node, error) {
	var err error
	for _, i := range idx {
		if n, err = child(n, i); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func skipType(n *node.Node) *node.Node {
	if n.Is(node.KindType) && n.NumChildren() == 1 {
		return n.Child(0)
	}
	return n
}

// trySubstitution writes a back-reference for n when it was already
// written. The returned entry is what the caller adds once it has spelled
// n out.
func (r *remangler) trySubstitution(n *node.Node, ident bool) (entry, bool) {
	if r.mangleStandardSubstitution(n) {
		return entry{}, true
	}
	e := r.substs.entryFor(n, ident)
	idx, ok := r.substs.find(e)
	if !ok {
		return e, false
	}
	r.trace("substitution", "kind", n.Kind(), "index", idx)
	if idx >= 26 {
		r.appendByte('A')
		r.mangleIndex(uint64(idx - 26))
		return e, true
	}
	letter := string(rune('A' + idx))
	if !r.merger.TryMerge(&r.buf, letter, false) {
		r.append("A" + letter)
	}
	return e, true
}

func (r *remangler) addSubstitution(e entry) {
	if e.n != nil {
		r.substs.add(e)
	}
}

// mangleStandardSubstitution writes the "S" shorthand for well-known
// standard library declarations.
func (r *remangler) mangleStandardSubstitution(n *node.Node) bool {
	if !n.Is(node.KindStructure, node.KindClass, node.KindEnum, node.KindProtocol) {
		return false
	}
	if n.NumChildren() < 2 || !n.Child(0).IsSwiftModule() || !n.Child(1).Is(node.KindIdentifier) {
		return false
	}
	s, ok := subst.Mangling(n.Child(1).TextOrEmpty(), true)
	if !ok {
		return false
	}
	if !r.merger.TryMerge(&r.buf, s, true) {
		r.append("S" + s)
	}
	return true
}
