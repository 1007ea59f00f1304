// Package node defines the tree representation shared by the Swift symbol
// decoder and encoder.
//
// A Node is immutable once it has been handed out by a constructor: every
// edit method returns a fresh node and leaves the receiver untouched. This
// makes it safe for a Cache to share structurally equal subtrees between
// many parents.
package node

import (
	"strconv"
	"strings"
)

// PayloadKind says which payload, if any, a node carries.
type PayloadKind uint8

const (
	PayloadNone PayloadKind = iota
	PayloadText
	PayloadIndex
)

// Node is one production in a decoded symbol tree.
type Node struct {
	kind     Kind
	payload  PayloadKind
	text     string
	index    uint64
	children []*Node
}

// New creates a node without payload.
func New(kind Kind, children ...*Node) *Node {
	return &Node{kind: kind, children: ownChildren(children)}
}

// NewText creates a node carrying a text payload.
func NewText(kind Kind, text string, children ...*Node) *Node {
	return &Node{kind: kind, payload: PayloadText, text: text, children: ownChildren(children)}
}

// NewIndex creates a node carrying an index payload.
func NewIndex(kind Kind, index uint64, children ...*Node) *Node {
	return &Node{kind: kind, payload: PayloadIndex, index: index, children: ownChildren(children)}
}

// NewType wraps a single child of the given kind in a Type node:
// Type(kind(children...)).
func NewType(kind Kind, children ...*Node) *Node {
	return New(KindType, New(kind, children...))
}

// NewStdlibType builds Type(kind(Module "Swift", Identifier name)).
func NewStdlibType(kind Kind, name string) *Node {
	return New(KindType, New(kind,
		NewText(KindModule, StdlibModule),
		NewText(KindIdentifier, name)))
}

// NewBuiltinType builds Type(kind text=name) for Builtin.* names.
func NewBuiltinType(kind Kind, name string) *Node {
	return New(KindType, NewText(kind, name))
}

// StdlibModule is the module name of the Swift standard library.
const StdlibModule = "Swift"

// ObjCModule and CModule are the pseudo modules used for imported declarations.
const (
	ObjCModule = "__C"
	CModule    = "__C_Synthesized"
)

func ownChildren(children []*Node) []*Node {
	if len(children) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Kind returns the production kind.
func (n *Node) Kind() Kind { return n.kind }

// Payload reports which payload the node carries.
func (n *Node) Payload() PayloadKind { return n.payload }

// Text returns the text payload.
func (n *Node) Text() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.text, n.payload == PayloadText
}

// TextOrEmpty returns the text payload, or "" when there is none.
func (n *Node) TextOrEmpty() string {
	if n == nil || n.payload != PayloadText {
		return ""
	}
	return n.text
}

// Index returns the index payload.
func (n *Node) Index() (uint64, bool) {
	if n == nil {
		return 0, false
	}
	return n.index, n.payload == PayloadIndex
}

// HasText reports whether the node carries text.
func (n *Node) HasText() bool { return n.payload == PayloadText }

// HasIndex reports whether the node carries an index.
func (n *Node) HasIndex() bool { return n.payload == PayloadIndex }

// NumChildren returns the number of children. A nil node has none.
func (n *Node) NumChildren() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i-th child, or nil when n is nil or i is out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node { return n.Child(0) }

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node { return n.Child(n.NumChildren() - 1) }

// Children returns a copy of the child slice.
func (n *Node) Children() []*Node {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Is reports whether n is non-nil and of one of the given kinds.
func (n *Node) Is(kinds ...Kind) bool {
	if n == nil {
		return false
	}
	for _, k := range kinds {
		if n.kind == k {
			return true
		}
	}
	return false
}

// FirstChildOfKind returns the first direct child of the given kind.
func (n *Node) FirstChildOfKind(kinds ...Kind) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.Is(kinds...) {
			return c
		}
	}
	return nil
}

// Find returns the first node, in pre-order, for which pred is true.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if pred(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Similar reports whether n and o have the same kind and payload, ignoring
// children.
func (n *Node) Similar(o *Node) bool {
	if n.kind != o.kind || n.payload != o.payload {
		return false
	}
	switch n.payload {
	case PayloadText:
		return n.text == o.text
	case PayloadIndex:
		return n.index == o.index
	}
	return true
}

// Equal reports whether two trees are structurally identical.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if !n.Similar(o) || len(n.children) != len(o.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	for range depth {
		sb.WriteString("  ")
	}
	sb.WriteString("kind=")
	sb.WriteString(n.kind.String())
	switch n.payload {
	case PayloadText:
		sb.WriteString(", text=\"")
		sb.WriteString(n.text)
		sb.WriteByte('"')
	case PayloadIndex:
		sb.WriteString(", index=")
		sb.WriteString(strconv.FormatUint(n.index, 10))
	}
	sb.WriteByte('\n')
	for _, c := range n.children {
		c.dump(sb, depth+1)
	}
}

func (n *Node) with(children []*Node) *Node {
	return &Node{kind: n.kind, payload: n.payload, text: n.text, index: n.index, children: children}
}

// WithChildren returns a copy of n with its children replaced.
func (n *Node) WithChildren(children ...*Node) *Node {
	return n.with(ownChildren(children))
}

// AddingChild returns a copy of n with child appended.
func (n *Node) AddingChild(child *Node) *Node {
	return n.AddingChildren(child)
}

// AddingChildren returns a copy of n with children appended.
func (n *Node) AddingChildren(children ...*Node) *Node {
	out := make([]*Node, 0, len(n.children)+len(children))
	out = append(out, n.children...)
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return n.with(out)
}

// InsertingChild returns a copy of n with child inserted at i.
func (n *Node) InsertingChild(child *Node, i int) *Node {
	if i < 0 || i > len(n.children) {
		return n
	}
	out := make([]*Node, 0, len(n.children)+1)
	out = append(out, n.children[:i]...)
	out = append(out, child)
	out = append(out, n.children[i:]...)
	return n.with(out)
}

// WithChild returns a copy of n with the i-th child replaced. A nil child
// removes the slot. Out-of-range indexes return n unchanged.
func (n *Node) WithChild(i int, child *Node) *Node {
	if i < 0 || i >= len(n.children) {
		return n
	}
	out := make([]*Node, 0, len(n.children))
	for j, c := range n.children {
		if j == i {
			if child != nil {
				out = append(out, child)
			}
			continue
		}
		out = append(out, c)
	}
	return n.with(out)
}

// ChangingKind returns a node of a different kind with the same payload and
// children, plus any extra children appended.
func (n *Node) ChangingKind(kind Kind, extra ...*Node) *Node {
	out := make([]*Node, 0, len(n.children)+len(extra))
	out = append(out, n.children...)
	out = append(out, ownChildren(extra)...)
	return &Node{kind: kind, payload: n.payload, text: n.text, index: n.index, children: out}
}

// ReversingFirst returns a copy with the first count children reversed.
func (n *Node) ReversingFirst(count int) *Node {
	count = min(count, len(n.children))
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	for i, j := 0, count-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return n.with(out)
}

// ReplacingDescendant returns a copy of the tree with old (compared by
// identity) replaced by repl.
func (n *Node) ReplacingDescendant(old, repl *Node) *Node {
	if n == old {
		return repl
	}
	if len(n.children) == 0 {
		return n
	}
	changed := false
	out := make([]*Node, len(n.children))
	for i, c := range n.children {
		out[i] = c.ReplacingDescendant(old, repl)
		changed = changed || out[i] != c
	}
	if !changed {
		return n
	}
	return n.with(out)
}
