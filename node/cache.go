package node

import (
	"encoding/binary"
	"sync"
)

// Interner returns a canonical instance for a structurally equal tree.
type Interner interface {
	Intern(n *Node) *Node
}

type cacheKey struct {
	kind     Kind
	payload  PayloadKind
	text     string
	index    uint64
	children string
}

// Cache deduplicates structurally equal subtrees. Nodes returned by Intern
// may be shared between many parents and must be treated as read-only.
//
// A Cache is not safe for concurrent use; see LockedCache.
type Cache struct {
	ids   map[*Node]uint32
	nodes map[cacheKey]*Node
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		ids:   make(map[*Node]uint32),
		nodes: make(map[cacheKey]*Node),
	}
}

// Intern returns the canonical node for n, interning its children first.
func (c *Cache) Intern(n *Node) *Node {
	if n == nil {
		return nil
	}
	if _, ok := c.ids[n]; ok {
		return n
	}

	var children []*Node
	for i, ch := range n.children {
		canon := c.Intern(ch)
		if canon != ch && children == nil {
			children = make([]*Node, len(n.children))
			copy(children, n.children[:i])
		}
		if children != nil {
			children[i] = canon
		}
	}
	if children != nil {
		n = n.with(children)
	}

	key := c.keyFor(n)
	if existing, ok := c.nodes[key]; ok {
		return existing
	}
	c.nodes[key] = n
	c.ids[n] = uint32(len(c.ids))
	return n
}

func (c *Cache) keyFor(n *Node) cacheKey {
	buf := make([]byte, 4*len(n.children))
	for i, ch := range n.children {
		binary.LittleEndian.PutUint32(buf[4*i:], c.ids[ch])
	}
	return cacheKey{kind: n.kind, payload: n.payload, text: n.text, index: n.index, children: string(buf)}
}

// Len returns the number of unique nodes held.
func (c *Cache) Len() int { return len(c.nodes) }

// Clear drops every interned node.
func (c *Cache) Clear() {
	clear(c.ids)
	clear(c.nodes)
}

// LockedCache is a Cache guarded by a mutex, for workers that share one
// table.
type LockedCache struct {
	mu sync.Mutex
	c  *Cache
}

// NewLockedCache returns an empty LockedCache.
func NewLockedCache() *LockedCache {
	return &LockedCache{c: NewCache()}
}

// Intern implements Interner.
func (l *LockedCache) Intern(n *Node) *Node {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Intern(n)
}

// Len returns the number of unique nodes held.
func (l *LockedCache) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Len()
}

// Clear drops every interned node.
func (l *LockedCache) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Clear()
}
