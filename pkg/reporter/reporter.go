// Package reporter writes parsed markup documents in the CLI output formats.
package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/tagtree/pkg/dom"
)

// Reporter writes one document.
type Reporter interface {
	// Report writes formatted output for the given input.
	Report(ctx context.Context, input Input) error
}

// Input is a parsed document together with where it came from.
type Input struct {
	// Path is the source file, or "" for stdin.
	Path string

	// Tree holds the parsed document.
	Tree *dom.Tree
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatMarkup:
		return NewMarkupReporter(opts), nil
	case FormatHTML:
		return NewHTMLReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// buffered runs write against a buffered view of w and flushes it,
// reporting the first error.
func buffered(w io.Writer, write func(bw *bufio.Writer) error) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	return write(bw)
}

// MarkupReporter writes the canonical serialization.
type MarkupReporter struct {
	opts Options
}

// NewMarkupReporter creates a new markup reporter.
func NewMarkupReporter(opts Options) *MarkupReporter {
	return &MarkupReporter{opts: opts}
}

// Report implements Reporter.
func (r *MarkupReporter) Report(_ context.Context, input Input) error {
	return buffered(r.opts.Writer, func(bw *bufio.Writer) error {
		if input.Tree == nil {
			return nil
		}
		_, err := fmt.Fprintln(bw, input.Tree.String())
		return err
	})
}
