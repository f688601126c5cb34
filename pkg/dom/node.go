// Package dom provides the tree model produced by the markup parser.
//
// A Tree is an arena that owns every node. Callers address nodes by NodeID,
// a stable index into the arena, and never hold references to node storage.
// Ownership flows strictly from parent to child through the children lists;
// the parent id stored on each node is used for upward lookup only.
//
// A Tree is not safe for concurrent mutation.
package dom

import (
	"fmt"
	"maps"
)

// NodeID addresses a node inside a Tree.
type NodeID int

// NoNode is the absent node id.
const NoNode NodeID = -1

// Kind is the variant of a node.
type Kind uint8

// Node variants. A Text node carries a payload and never children; an
// Element carries children and never a payload. The zero Kind is Text so a
// bare node starts out as an empty Text.
const (
	KindText Kind = iota
	KindElement
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	default:
		return "unknown"
	}
}

// node is the arena slot for a single tree node.
type node struct {
	tag      string
	kind     Kind
	text     string
	children []NodeID
	attrs    map[string]string
	parent   NodeID
}

// Tree owns a set of nodes and designates one of them as the root.
type Tree struct {
	nodes []node
	root  NodeID
}

// NewTree creates an empty tree with no root.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

// Len returns the number of nodes allocated in the tree, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Valid reports whether id names a node of this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) node(id NodeID) *node {
	if !t.Valid(id) {
		return nil
	}
	return &t.nodes[id]
}

// Root returns the root node, or NoNode if none has been set.
func (t *Tree) Root() NodeID {
	return t.root
}

// SetRoot designates id as the root. The node must not have a parent.
func (t *Tree) SetRoot(id NodeID) error {
	n := t.node(id)
	if n == nil {
		return invalidNode(id)
	}
	if n.parent != NoNode {
		return fmt.Errorf("set root %d: %w", id, ErrAttached)
	}
	t.root = id
	return nil
}

// TagName returns the tag name of a node.
func (t *Tree) TagName(id NodeID) string {
	if n := t.node(id); n != nil {
		return n.tag
	}
	return ""
}

// Kind returns the variant of a node.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.node(id); n != nil {
		return n.kind
	}
	return KindText
}

// IsText reports whether the node is a Text node.
func (t *Tree) IsText(id NodeID) bool {
	n := t.node(id)
	return n != nil && n.kind == KindText
}

// IsElement reports whether the node is an Element node.
func (t *Tree) IsElement(id NodeID) bool {
	n := t.node(id)
	return n != nil && n.kind == KindElement
}

// Text returns the payload of a Text node. Elements have no payload.
func (t *Tree) Text(id NodeID) string {
	if n := t.node(id); n != nil && n.kind == KindText {
		return n.text
	}
	return ""
}

// Children returns a copy of the node's child ids in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.node(id)
	if n == nil || len(n.children) == 0 {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of direct children.
func (t *Tree) ChildCount(id NodeID) int {
	if n := t.node(id); n != nil {
		return len(n.children)
	}
	return 0
}

// HasChildren reports whether the node has any children.
func (t *Tree) HasChildren(id NodeID) bool {
	return t.ChildCount(id) > 0
}

// Parent returns the node's parent, if it has one.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n := t.node(id)
	if n == nil || n.parent == NoNode {
		return NoNode, false
	}
	return n.parent, true
}

// Attr returns the value bound to key on the node.
func (t *Tree) Attr(id NodeID, key string) (string, bool) {
	n := t.node(id)
	if n == nil {
		return "", false
	}
	v, ok := n.attrs[key]
	return v, ok
}

// Attrs returns a copy of the node's attributes.
func (t *Tree) Attrs(id NodeID) map[string]string {
	n := t.node(id)
	if n == nil || len(n.attrs) == 0 {
		return map[string]string{}
	}
	return maps.Clone(n.attrs)
}

// Depth returns the number of ancestors above the node.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for p, ok := t.Parent(id); ok; p, ok = t.Parent(p) {
		depth++
	}
	return depth
}
