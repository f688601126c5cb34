package reporter

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/yaklabco/tagtree/internal/ui/pretty"
	"github.com/yaklabco/tagtree/pkg/dom"
)

// TextReporter prints the document as an indented outline.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, input Input) error {
	return buffered(r.opts.Writer, func(bw *bufio.Writer) error {
		if input.Tree == nil || input.Tree.Root() == dom.NoNode {
			_, err := fmt.Fprintln(bw, r.styles.Dim.Render("(empty document)"))
			return err
		}

		if r.opts.ShowHeader && input.Path != "" {
			if _, err := fmt.Fprintln(bw, r.styles.FormatFileHeader(input.Path, input.Tree.Len())); err != nil {
				return err
			}
		}

		var sb strings.Builder
		r.outline(&sb, input.Tree, input.Tree.Root(), 0)
		_, err := bw.WriteString(sb.String())
		return err
	})
}

// outline writes id and its descendants, one node per line.
func (r *TextReporter) outline(sb *strings.Builder, tree *dom.Tree, id dom.NodeID, depth int) {
	sb.WriteString(strings.Repeat(" ", depth*r.opts.Indent))
	sb.WriteString(r.styles.Tag.Render(tree.TagName(id)))

	if r.opts.ShowAttributes {
		r.writeAttrs(sb, tree.Attrs(id))
	}

	if tree.IsText(id) {
		if text := tree.Text(id); text != "" {
			sb.WriteByte(' ')
			sb.WriteString(r.styles.Text.Render(fmt.Sprintf("%q", text)))
		}
	}

	children := tree.Children(id)
	if len(children) > 0 && r.opts.MaxDepth > 0 && depth+1 >= r.opts.MaxDepth {
		sb.WriteString(r.styles.Guide.Render(fmt.Sprintf(" (+%d)", len(children))))
		sb.WriteByte('\n')
		return
	}
	sb.WriteByte('\n')

	for _, child := range children {
		r.outline(sb, tree, child, depth+1)
	}
}

func (r *TextReporter) writeAttrs(sb *strings.Builder, attrs map[string]string) {
	keys := lo.Keys(attrs)
	slices.Sort(keys)

	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(r.styles.AttrKey.Render(k))
		sb.WriteByte('=')
		sb.WriteString(r.styles.AttrValue.Render(fmt.Sprintf("%q", attrs[k])))
	}
}
