package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/tagtree/pkg/lexer"
)

var (
	// ErrUnexpectedToken is returned when a token of the wrong kind appears.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnclosedTag is returned when a tag is never closed or closed by a
	// tag of a different name.
	ErrUnclosedTag = errors.New("unclosed tag")

	// ErrUnexpectedEOF is returned when the token stream ends too early.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// Error describes a parse failure.
//
// For ErrUnclosedTag, Tag and Pos name the opening tag that was left
// unterminated. For ErrUnexpectedToken, Found and Pos describe the offending
// token and Expected lists the kinds that would have been accepted.
type Error struct {
	Err      error
	Tag      string
	Expected []lexer.TokenKind
	Found    lexer.TokenKind
	Pos      lexer.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnclosedTag):
		return fmt.Sprintf("%s %q opened at %s", e.Err, e.Tag, e.Pos)
	case errors.Is(e.Err, ErrUnexpectedToken):
		msg := fmt.Sprintf("%s %s at %s", e.Err, e.Found, e.Pos)
		if len(e.Expected) > 0 {
			names := make([]string, len(e.Expected))
			for i, k := range e.Expected {
				names[i] = k.String()
			}
			msg += ", expected " + strings.Join(names, " or ")
		}
		return msg
	default:
		return fmt.Sprintf("%s at %s", e.Err, e.Pos)
	}
}

// Unwrap returns the sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

// Position returns where the error was detected.
func (e *Error) Position() lexer.Position {
	return e.Pos
}
