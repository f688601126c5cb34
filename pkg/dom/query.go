package dom

import "github.com/samber/lo"

// GetElementByAttribute returns the first immediate child of id whose
// attribute key is bound to value. Grandchildren are never inspected.
func (t *Tree) GetElementByAttribute(id NodeID, key, value string) (NodeID, bool) {
	n := t.node(id)
	if n == nil {
		return NoNode, false
	}
	found, ok := lo.Find(n.children, func(child NodeID) bool {
		return t.hasAttr(child, key, value)
	})
	if !ok {
		return NoNode, false
	}
	return found, true
}

// GetElementsByAttribute returns every immediate child of id whose attribute
// key is bound to value, in document order.
func (t *Tree) GetElementsByAttribute(id NodeID, key, value string) []NodeID {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return lo.Filter(n.children, func(child NodeID, _ int) bool {
		return t.hasAttr(child, key, value)
	})
}

// FindByAttribute searches the whole subtree below id, excluding id itself.
func (t *Tree) FindByAttribute(id NodeID, key, value string) []NodeID {
	return t.FindAll(id, func(cur NodeID) bool {
		return cur != id && t.hasAttr(cur, key, value)
	})
}

func (t *Tree) hasAttr(id NodeID, key, value string) bool {
	v, ok := t.Attr(id, key)
	return ok && v == value
}
