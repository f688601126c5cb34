// Package lexer turns markup text into a token stream with source positions.
//
// The lexer runs in two modes selected by a single flag. Inside a tag
// (after '<' and until '>') identifiers stop at spaces, so tag and
// attribute names come out one per token. Outside a tag identifiers also
// swallow spaces, so a run of text content becomes one identifier token.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// Lexer performs a single-pass tokenization of markup content.
type Lexer struct {
	input  string
	offset int
	pos    Position
	inTag  bool
	tokens []Token
}

// New creates a lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize lexes input in one pass. It returns the complete token stream or
// the first error; there is no resynchronization.
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokenize()
}

// Tokenize consumes the whole input.
func (l *Lexer) Tokenize() ([]Token, error) {
	const initialCapacityDivisor = 4 // rough tokens-per-byte estimate
	l.tokens = make([]Token, 0, len(l.input)/initialCapacityDivisor)

	for l.offset < len(l.input) {
		if err := l.next(); err != nil {
			return nil, err
		}
	}

	return l.tokens, nil
}

// Tokens returns the tokens produced so far.
func (l *Lexer) Tokens() []Token {
	return l.tokens
}

// InTag reports whether the lexer is currently between '<' and '>'.
func (l *Lexer) InTag() bool {
	return l.inTag
}

// next classifies the rune at the cursor and consumes it, plus whatever run
// it starts.
func (l *Lexer) next() error {
	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	start := l.pos

	switch {
	case r == '<':
		if strings.HasPrefix(l.input[l.offset:], commentOpen) {
			return l.skipComment()
		}
		l.inTag = true
		l.emitRune(TokOpenAngle, r, size)
	case r == '>':
		l.inTag = false
		l.emitRune(TokCloseAngle, r, size)
	case r == '/':
		l.emitRune(TokSlash, r, size)
	case r == '=':
		l.emitRune(TokEquals, r, size)
	case r == '!':
		l.emitRune(TokBang, r, size)
	case r == '-':
		l.emitRune(TokDash, r, size)
	case r == ' ':
		l.advance(size)
	case r == '\n':
		l.advance(size)
		l.newline()
	case r == '"' || r == '\'':
		return l.literal(r)
	case isIdentStart(r):
		l.identifier()
	default:
		return &Error{Err: ErrUnexpectedChar, Pos: start, Char: r}
	}

	return nil
}

// identifier consumes letters, digits and underscores, plus spaces when
// outside a tag.
func (l *Lexer) identifier() {
	start := l.pos
	begin := l.offset

	for l.offset < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.offset:])
		if !l.isIdentRune(r) {
			break
		}
		l.advance(size)
	}

	l.tokens = append(l.tokens, Token{
		Kind:    TokIdentifier,
		Pos:     start,
		Content: l.input[begin:l.offset],
	})
}

// literal consumes a quoted literal starting at the opening quote.
// Escapes are not interpreted, but any 'n' directly after a backslash is
// rejected, even when that backslash follows another one.
func (l *Lexer) literal(quote rune) error {
	start := l.pos
	body := l.input[l.offset+utf8.RuneLen(quote):]
	escaped := false

	for i, r := range body {
		switch {
		case escaped && r == 'n':
			return &Error{Err: ErrUnexpectedEOL, Pos: start}
		case r == '\n':
			return &Error{Err: ErrUnclosedLiteral, Pos: start}
		case r == quote:
			content := body[:i]
			l.advanceText(string(quote))
			l.advanceText(content)
			l.advanceText(string(quote))
			l.tokens = append(l.tokens, Token{Kind: TokLiteral, Pos: start, Content: content})
			return nil
		}
		escaped = r == '\\'
	}

	return &Error{Err: ErrUnclosedLiteral, Pos: start}
}

// skipComment discards everything from "<!--" through the next "-->".
// Comments never produce tokens and never touch the tag-mode flag.
func (l *Lexer) skipComment() error {
	start := l.pos
	l.advanceText(commentOpen)

	for l.offset < len(l.input) {
		if strings.HasPrefix(l.input[l.offset:], commentClose) {
			l.advanceText(commentClose)
			return nil
		}
		r, size := utf8.DecodeRuneInString(l.input[l.offset:])
		l.advance(size)
		if r == '\n' {
			l.newline()
		}
	}

	return &Error{Err: ErrUnexpectedEOF, Pos: start}
}

// emitRune appends a single-character token and consumes it.
func (l *Lexer) emitRune(kind TokenKind, r rune, size int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Pos: l.pos, Content: string(r)})
	l.advance(size)
}

// advance consumes one rune of the given byte size.
func (l *Lexer) advance(size int) {
	l.offset += size
	l.pos.Column++
}

// advanceText consumes s, which must not contain newlines.
func (l *Lexer) advanceText(s string) {
	l.offset += len(s)
	l.pos.Column += utf8.RuneCountInString(s)
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) isIdentRune(r rune) bool {
	return isIdentStart(r) || r == '_' || (!l.inTag && r == ' ')
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
