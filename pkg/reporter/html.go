package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/tagtree/pkg/dom"
	"github.com/yaklabco/tagtree/pkg/render"
)

// HTMLReporter renders the document as HTML.
type HTMLReporter struct {
	opts Options
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{opts: opts}
}

// Report implements Reporter.
func (r *HTMLReporter) Report(_ context.Context, input Input) error {
	tree := input.Tree
	if tree == nil {
		tree = dom.NewTree()
	}

	return buffered(r.opts.Writer, func(bw *bufio.Writer) error {
		if err := render.Render(bw, tree, render.Options{Doctype: r.opts.Doctype}); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return bw.WriteByte('\n')
	})
}
