package dom

// NewNode creates a bare node: the given tag name, an empty Text payload, no
// attributes and no parent. The caller (or the parser) fills in the real
// variant and attributes afterwards.
func (t *Tree) NewNode(tag string) NodeID {
	t.nodes = append(t.nodes, node{
		tag:    tag,
		kind:   KindText,
		parent: NoNode,
	})
	return NodeID(len(t.nodes) - 1)
}

// NewElement creates a detached Element node with no children.
func (t *Tree) NewElement(tag string) NodeID {
	id := t.NewNode(tag)
	t.nodes[id].kind = KindElement
	return id
}

// NewText creates a detached Text node with the given payload.
func (t *Tree) NewText(tag, payload string) NodeID {
	id := t.NewNode(tag)
	t.nodes[id].text = payload
	return id
}

// AppendElement attaches child as the last child of parent.
//
// It fails with a BlockedAppendError when parent is a Text node, when child
// already has a parent or is the root, or when child is parent itself or one
// of its ancestors. On failure the tree is left unchanged.
func (t *Tree) AppendElement(parent, child NodeID) error {
	p := t.node(parent)
	if p == nil {
		return invalidNode(parent)
	}
	c := t.node(child)
	if c == nil {
		return invalidNode(child)
	}

	if p.kind == KindText {
		return &BlockedAppendError{Reason: "attempt to append element to a text element"}
	}
	if c.parent != NoNode {
		return &BlockedAppendError{Reason: "node already has a parent"}
	}
	if child == t.root {
		return &BlockedAppendError{Reason: "cannot append the root node"}
	}
	for anc := parent; anc != NoNode; anc = t.nodes[anc].parent {
		if anc == child {
			return &BlockedAppendError{Reason: "append would create a cycle"}
		}
	}

	c.parent = parent
	p.children = append(p.children, child)
	return nil
}

// AppendText appends text to the payload of a Text node in place.
// It fails with a BlockedAppendError on an Element.
func (t *Tree) AppendText(id NodeID, text string) error {
	n := t.node(id)
	if n == nil {
		return invalidNode(id)
	}
	if n.kind == KindElement {
		return &BlockedAppendError{Reason: "attempt to append text on element node"}
	}
	n.text += text
	return nil
}

// SetElement turns the node into an Element, dropping any text payload.
func (t *Tree) SetElement(id NodeID) error {
	n := t.node(id)
	if n == nil {
		return invalidNode(id)
	}
	n.kind = KindElement
	n.text = ""
	return nil
}

// SetText turns the node into a Text node carrying payload.
// Elements that already have children cannot become Text.
func (t *Tree) SetText(id NodeID, payload string) error {
	n := t.node(id)
	if n == nil {
		return invalidNode(id)
	}
	if len(n.children) > 0 {
		return &BlockedAppendError{Reason: "element with children cannot carry text"}
	}
	n.kind = KindText
	n.text = payload
	return nil
}

// SetAttr binds key to value on the node. An existing key is overwritten.
func (t *Tree) SetAttr(id NodeID, key, value string) error {
	n := t.node(id)
	if n == nil {
		return invalidNode(id)
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return nil
}

// RemoveAttr deletes key from the node's attributes.
func (t *Tree) RemoveAttr(id NodeID, key string) {
	if n := t.node(id); n != nil {
		delete(n.attrs, key)
	}
}
