// Package render lowers a dom.Tree into gomponents nodes and writes HTML.
//
// Unlike dom.Tree.Serialize, rendering keeps attributes on every element,
// escapes text and attribute values, and emits void elements such as br
// without a closing tag.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	g "maragu.dev/gomponents"

	"github.com/yaklabco/tagtree/pkg/dom"
)

const doctype = "<!doctype html>"

// Options controls HTML rendering.
type Options struct {
	// Doctype prefixes the output with an HTML5 doctype.
	Doctype bool
}

// Lower converts the subtree rooted at id into a gomponents node.
// An invalid id lowers to an empty group.
func Lower(tree *dom.Tree, id dom.NodeID) g.Node {
	if !tree.Valid(id) {
		return g.Group(nil)
	}

	args := lowerAttrs(tree.Attrs(id))

	if tree.IsText(id) {
		if text := tree.Text(id); text != "" {
			args = append(args, g.Text(text))
		}
		return g.El(tree.TagName(id), args...)
	}

	for _, child := range tree.Children(id) {
		args = append(args, Lower(tree, child))
	}
	return g.El(tree.TagName(id), args...)
}

func lowerAttrs(attrs map[string]string) []g.Node {
	keys := lo.Keys(attrs)
	slices.Sort(keys)

	return lo.Map(keys, func(k string, _ int) g.Node {
		return g.Attr(k, attrs[k])
	})
}

// Render writes the tree as HTML starting from its root.
func Render(w io.Writer, tree *dom.Tree, opts Options) error {
	if opts.Doctype {
		if _, err := io.WriteString(w, doctype); err != nil {
			return fmt.Errorf("write doctype: %w", err)
		}
	}
	if err := Lower(tree, tree.Root()).Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// HTML renders the tree to a string.
func HTML(tree *dom.Tree, opts Options) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, tree, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
