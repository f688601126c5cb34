package lexer

import "fmt"

// Position is a zero-based line and column in the source.
// Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// String renders the position 1-based, as editors display it.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}
