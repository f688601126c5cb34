package markup

import (
	"errors"

	"github.com/yaklabco/tagtree/pkg/lexer"
)

// Kind classifies which layer produced an Error.
type Kind uint8

// Error kinds.
const (
	KindLex Kind = iota
	KindParse
	KindBlockedAppend
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLex:
		return "tokenize"
	case KindParse:
		return "parse"
	case KindBlockedAppend:
		return "blocked append"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by this package. Err is the
// underlying *lexer.Error, *parser.Error or *dom.BlockedAppendError.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindBlockedAppend {
		return e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap returns the layer error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Position returns the source position of the failure when the layer error
// carries one.
func (e *Error) Position() (lexer.Position, bool) {
	var positioned interface{ Position() lexer.Position }
	if errors.As(e.Err, &positioned) {
		return positioned.Position(), true
	}
	return lexer.Position{}, false
}
