// Package markup is the entry point for parsing markup text into a
// document tree.
//
//	doc, err := markup.Parse(`<a foo="bar"><b>text</b></a>`)
//	if err != nil {
//		var merr *markup.Error
//		errors.As(err, &merr) // merr.Kind is KindLex or KindParse
//	}
//	fmt.Println(doc)
package markup

import (
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/tagtree/pkg/dom"
	"github.com/yaklabco/tagtree/pkg/lexer"
	"github.com/yaklabco/tagtree/pkg/parser"
)

// Document is a parsed markup document.
type Document struct {
	tree *dom.Tree
}

// Parse tokenizes and parses text. Any failure is returned as *Error.
// Content after the root tag is ignored.
func Parse(text string) (*Document, error) {
	return parse(text, false)
}

// ParseStrict is like Parse but fails when anything follows the root tag.
func ParseStrict(text string) (*Document, error) {
	return parse(text, true)
}

func parse(text string, strict bool) (*Document, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, &Error{Kind: KindLex, Err: err}
	}

	p := parser.New(tokens)
	if strict {
		p.Strict()
	}
	tree, err := p.Parse()
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: err}
	}

	return &Document{tree: tree}, nil
}

// ParseBytes parses UTF-8 encoded content.
func ParseBytes(content []byte) (*Document, error) {
	return Parse(string(content))
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markup: %w", err)
	}
	return ParseBytes(content)
}

// Root returns the document's root node.
func (d *Document) Root() dom.NodeID {
	return d.tree.Root()
}

// Tree returns the underlying tree for queries and mutation.
func (d *Document) Tree() *dom.Tree {
	return d.tree
}

// String serializes the document from its root.
func (d *Document) String() string {
	return d.tree.String()
}

// AppendElement attaches child under parent, reporting a blocked append as
// *Error.
func (d *Document) AppendElement(parent, child dom.NodeID) error {
	return wrapBlocked(d.tree.AppendElement(parent, child))
}

// AppendText appends text to a Text node, reporting a blocked append as
// *Error.
func (d *Document) AppendText(id dom.NodeID, text string) error {
	return wrapBlocked(d.tree.AppendText(id, text))
}

func wrapBlocked(err error) error {
	if errors.Is(err, dom.ErrBlockedAppend) {
		return &Error{Kind: KindBlockedAppend, Err: err}
	}
	return err
}
