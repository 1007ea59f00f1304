package node

// Builder accumulates children for a node that is still under construction.
// The node it returns from Build must not be edited through the builder
// afterwards.
type Builder struct {
	n *Node
}

// NewBuilder starts a node of the given kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{n: &Node{kind: kind}}
}

// BuilderFrom starts from a shallow copy of n.
func BuilderFrom(n *Node) *Builder {
	return &Builder{n: n.with(n.Children())}
}

// SetText sets a text payload.
func (b *Builder) SetText(text string) *Builder {
	b.n.payload, b.n.text, b.n.index = PayloadText, text, 0
	return b
}

// SetIndex sets an index payload.
func (b *Builder) SetIndex(index uint64) *Builder {
	b.n.payload, b.n.text, b.n.index = PayloadIndex, "", index
	return b
}

// AddChild appends child; nil is ignored.
func (b *Builder) AddChild(child *Node) *Builder {
	if child != nil {
		b.n.children = append(b.n.children, child)
	}
	return b
}

// AddChildren appends every non-nil child.
func (b *Builder) AddChildren(children ...*Node) *Builder {
	for _, c := range children {
		b.AddChild(c)
	}
	return b
}

// InsertChild inserts child at position i.
func (b *Builder) InsertChild(child *Node, i int) *Builder {
	if child == nil || i < 0 || i > len(b.n.children) {
		return b
	}
	b.n.children = append(b.n.children, nil)
	copy(b.n.children[i+1:], b.n.children[i:])
	b.n.children[i] = child
	return b
}

// SetChild replaces the i-th child.
func (b *Builder) SetChild(child *Node, i int) *Builder {
	if child != nil && i >= 0 && i < len(b.n.children) {
		b.n.children[i] = child
	}
	return b
}

// RemoveChild drops the i-th child.
func (b *Builder) RemoveChild(i int) *Builder {
	if i >= 0 && i < len(b.n.children) {
		b.n.children = append(b.n.children[:i], b.n.children[i+1:]...)
	}
	return b
}

// ReverseChildren reverses the children accumulated so far.
func (b *Builder) ReverseChildren() *Builder {
	return b.ReverseFirst(len(b.n.children))
}

// ReverseFirst reverses the first count children.
func (b *Builder) ReverseFirst(count int) *Builder {
	c := b.n.children
	count = min(count, len(c))
	for i, j := 0, count-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
	return b
}

// Len returns the number of children accumulated so far.
func (b *Builder) Len() int { return len(b.n.children) }

// Child returns the i-th accumulated child or nil.
func (b *Builder) Child(i int) *Node { return b.n.Child(i) }

// Build returns the finished node.
func (b *Builder) Build() *Node { return b.n }
