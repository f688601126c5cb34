package lexer

import (
	"errors"
	"fmt"
)

// Sentinel errors for lexing failures. Match them with errors.Is.
var (
	// ErrUnclosedLiteral is returned when a quoted literal hits a raw newline
	// or the end of input before its closing quote.
	ErrUnclosedLiteral = errors.New("unclosed literal")

	// ErrUnexpectedEOL is returned when a literal contains an escaped newline.
	ErrUnexpectedEOL = errors.New("unexpected end of line")

	// ErrUnexpectedChar is returned for a character no rule accepts.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrUnexpectedEOF is returned when a comment runs off the end of input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// Error is a lexing failure with its source position.
type Error struct {
	// Err is one of the package sentinels.
	Err error

	// Pos is where the offending construct starts.
	Pos Position

	// Char is the offending character for ErrUnexpectedChar.
	Char rune
}

// Error implements the error interface.
func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnexpectedChar) {
		return fmt.Sprintf("%s %q at %s", e.Err, e.Char, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

// Unwrap returns the sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

// Position returns the source position of the failure.
func (e *Error) Position() Position {
	return e.Pos
}
