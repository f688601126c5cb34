package dom

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Serialize renders the subtree rooted at id.
//
// An Element with children renders as <tag> + children + </tag> and its
// attributes are not emitted. A Text node renders as
// <tag k='v'>payload</tag> and a childless Element as <tag k='v'/>.
// Attributes are written in sorted key order.
func (t *Tree) Serialize(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	var sb strings.Builder
	t.serialize(&sb, id)
	return sb.String()
}

// String serializes the whole tree from its root.
func (t *Tree) String() string {
	return t.Serialize(t.root)
}

func (t *Tree) serialize(sb *strings.Builder, id NodeID) {
	n := &t.nodes[id]

	switch {
	case len(n.children) > 0:
		sb.WriteByte('<')
		sb.WriteString(n.tag)
		sb.WriteByte('>')
		for _, child := range n.children {
			t.serialize(sb, child)
		}
		sb.WriteString("</")
		sb.WriteString(n.tag)
		sb.WriteByte('>')
	case n.kind == KindText:
		sb.WriteByte('<')
		sb.WriteString(n.tag)
		writeAttrs(sb, n.attrs)
		sb.WriteByte('>')
		sb.WriteString(n.text)
		sb.WriteString("</")
		sb.WriteString(n.tag)
		sb.WriteByte('>')
	default:
		sb.WriteByte('<')
		sb.WriteString(n.tag)
		writeAttrs(sb, n.attrs)
		sb.WriteString("/>")
	}
}

func writeAttrs(sb *strings.Builder, attrs map[string]string) {
	keys := lo.Keys(attrs)
	slices.Sort(keys)

	for _, k := range keys {
		v := attrs[k]
		quote := byte('\'')
		if strings.ContainsRune(v, '\'') {
			quote = '"'
		}
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteByte(quote)
		sb.WriteString(v)
		sb.WriteByte(quote)
	}
}
