// Package parser builds a dom.Tree from a lexer token stream.
//
// The grammar is parsed by recursive descent:
//
//	document    := declaration? tag
//	declaration := '<' '!' <anything up to and including the next '>'>
//	tag         := '<' identifier attributes '>' content? closing
//	attributes  := ( identifier '=' (identifier | literal) )* ( '/' )?
//	content     := identifier | tag*
//	closing     := '<' '/' identifier '>'
//
// The closing tag is skipped when the attribute list ends in a slash. Any
// '<' after the opening tag makes the node an Element, so "<a></a>" is a
// childless Element just like "<a/>". Tokens after the root tag are ignored
// unless the parser is strict.
package parser

import (
	"errors"

	"github.com/yaklabco/tagtree/pkg/dom"
	"github.com/yaklabco/tagtree/pkg/lexer"
)

// Parser walks a token slice with an explicit cursor.
type Parser struct {
	tokens  []lexer.Token
	current int
	tree    *dom.Tree
	strict  bool
}

// New creates a parser over tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Strict makes Parse reject tokens that follow the root tag.
func (p *Parser) Strict() *Parser {
	p.strict = true
	return p
}

// ParseTokens parses tokens into a new tree.
func ParseTokens(tokens []lexer.Token) (*dom.Tree, error) {
	return New(tokens).Parse()
}

// Parse parses the whole token stream. It returns a tree whose root is the
// document's single top-level tag, or the first error encountered. No tree
// is returned on failure.
func (p *Parser) Parse() (*dom.Tree, error) {
	p.current = 0
	p.tree = dom.NewTree()

	if err := p.declaration(); err != nil {
		return nil, err
	}

	root, err := p.tag()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.peek(); ok && p.strict {
		return nil, unexpected(tok)
	}

	if err := p.tree.SetRoot(root); err != nil {
		return nil, err
	}

	return p.tree, nil
}

// declaration skips a leading "<!...>" if present.
func (p *Parser) declaration() error {
	start := p.mark()
	if !p.match(lexer.TokOpenAngle) || !p.check(lexer.TokBang) {
		p.restore(start)
		return nil
	}

	for {
		tok, ok := p.advance()
		if !ok {
			return p.eof()
		}
		if tok.Kind == lexer.TokCloseAngle {
			return nil
		}
	}
}

// tag parses one tag, its content and its closing tag.
func (p *Parser) tag() (dom.NodeID, error) {
	if _, err := p.expect(lexer.TokOpenAngle); err != nil {
		return dom.NoNode, err
	}
	name, err := p.expect(lexer.TokIdentifier)
	if err != nil {
		return dom.NoNode, err
	}

	id := p.tree.NewNode(name.Content)

	closed, err := p.attributes(id)
	if err != nil {
		return dom.NoNode, err
	}
	if _, err := p.expect(lexer.TokCloseAngle); err != nil {
		return dom.NoNode, err
	}

	if closed {
		return id, p.tree.SetElement(id)
	}

	switch {
	case p.check(lexer.TokIdentifier):
		tok, _ := p.advance()
		if err := p.tree.SetText(id, tok.Content); err != nil {
			return dom.NoNode, err
		}
	case p.check(lexer.TokOpenAngle):
		if err := p.tree.SetElement(id); err != nil {
			return dom.NoNode, err
		}
		if !p.closingAhead() {
			if err := p.children(id, name); err != nil {
				return dom.NoNode, err
			}
		}
	}

	if err := p.closing(name); err != nil {
		return dom.NoNode, err
	}

	return id, nil
}

// children parses nested tags until the next token pair is "</".
func (p *Parser) children(parent dom.NodeID, open lexer.Token) error {
	for !p.closingAhead() {
		child, err := p.tag()
		if errors.Is(err, ErrUnexpectedEOF) {
			return unclosed(open)
		}
		if err != nil {
			return err
		}
		if err := p.tree.AppendElement(parent, child); err != nil {
			return err
		}
	}
	return nil
}

// closing consumes "</name>" and checks it against the opening tag.
func (p *Parser) closing(open lexer.Token) error {
	_, err := p.expect(lexer.TokOpenAngle)
	if err == nil {
		_, err = p.expect(lexer.TokSlash)
	}
	var closeName lexer.Token
	if err == nil {
		closeName, err = p.expect(lexer.TokIdentifier)
	}
	if errors.Is(err, ErrUnexpectedEOF) {
		return unclosed(open)
	}
	if err != nil {
		return err
	}

	if closeName.Content != open.Content {
		return unclosed(open)
	}

	_, err = p.expect(lexer.TokCloseAngle)
	if errors.Is(err, ErrUnexpectedEOF) {
		return unclosed(open)
	}
	return err
}

// attributes consumes key=value pairs into the node until '>' or '/'.
// It reports whether the tag was self-closed.
func (p *Parser) attributes(id dom.NodeID) (bool, error) {
	for {
		if p.check(lexer.TokCloseAngle) {
			return false, nil
		}
		if p.match(lexer.TokSlash) {
			return true, nil
		}

		key, err := p.expect(lexer.TokIdentifier)
		if err != nil {
			return false, err
		}
		if _, err := p.expect(lexer.TokEquals); err != nil {
			return false, err
		}
		value, err := p.expect(lexer.TokIdentifier, lexer.TokLiteral)
		if err != nil {
			return false, err
		}

		if err := p.tree.SetAttr(id, key.Content, value.Content); err != nil {
			return false, err
		}
	}
}

// closingAhead reports whether the next two tokens are '<' '/' without
// consuming them.
func (p *Parser) closingAhead() bool {
	start := p.mark()
	defer p.restore(start)
	return p.match(lexer.TokOpenAngle) && p.check(lexer.TokSlash)
}

func (p *Parser) mark() int {
	return p.current
}

func (p *Parser) restore(mark int) {
	p.current = mark
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.current < len(p.tokens) {
		return p.tokens[p.current], true
	}
	return lexer.Token{}, false
}

func (p *Parser) advance() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.current++
	}
	return tok, ok
}

func (p *Parser) check(kinds ...lexer.TokenKind) bool {
	tok, ok := p.peek()
	return ok && tok.Is(kinds...)
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	if p.check(kinds...) {
		p.current++
		return true
	}
	return false
}

// expect consumes the next token if it has one of the given kinds.
func (p *Parser) expect(kinds ...lexer.TokenKind) (lexer.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return lexer.Token{}, p.eof()
	}
	if !tok.Is(kinds...) {
		err := unexpected(tok)
		err.Expected = kinds
		return lexer.Token{}, err
	}
	p.current++
	return tok, nil
}

// eof reports end of input at the last token seen.
func (p *Parser) eof() *Error {
	err := &Error{Err: ErrUnexpectedEOF}
	if n := len(p.tokens); n > 0 {
		err.Pos = p.tokens[n-1].Pos
	}
	return err
}

func unexpected(tok lexer.Token) *Error {
	return &Error{Err: ErrUnexpectedToken, Found: tok.Kind, Pos: tok.Pos}
}

func unclosed(open lexer.Token) *Error {
	return &Error{Err: ErrUnclosedTag, Tag: open.Content, Pos: open.Pos}
}
