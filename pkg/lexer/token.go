package lexer

// TokenKind classifies a token in the markup source.
type TokenKind uint8

// Token kinds. The set is closed; the parser switches on it directly.
const (
	TokOpenAngle  TokenKind = iota // '<'
	TokCloseAngle                  // '>'
	TokSlash                       // '/'
	TokEquals                      // '='
	TokIdentifier                  // tag/attribute names, unquoted values, running text
	TokLiteral                     // quoted attribute values
	TokBang                        // '!'
	TokDash                        // '-'
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokOpenAngle:
		return "open-angle"
	case TokCloseAngle:
		return "close-angle"
	case TokSlash:
		return "slash"
	case TokEquals:
		return "equals"
	case TokIdentifier:
		return "identifier"
	case TokLiteral:
		return "literal"
	case TokBang:
		return "bang"
	case TokDash:
		return "dash"
	default:
		return "unknown"
	}
}

// Token is a classified span of the markup source.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Pos is where the token starts.
	Pos Position

	// Content is the token text. For literals it excludes the quotes.
	Content string
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}
