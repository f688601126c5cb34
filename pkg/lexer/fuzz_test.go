package lexer

import (
	"errors"
	"testing"
)

// FuzzTokenize fuzzes the tokenizer with random input.
func FuzzTokenize(f *testing.F) {
	// Add seed corpus.
	seeds := []string{
		"",
		"<a/>",
		`<a foo="bar"/>`,
		"<p>hello world</p>",
		"<a><!-- x --></a>",
		"<!-- unterminated",
		`<a b='it"s'>`,
		`<a b="x\ny">`,
		"<a>\n\n</a>",
		"<é ü=ö>",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Tokenize should never panic.
		tokens, err := Tokenize(input)
		if err != nil {
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("error %v is not a *Error", err)
			}
			if tokens != nil {
				t.Error("expected no tokens on error")
			}
			return
		}

		// Positions never go backwards.
		for i := 1; i < len(tokens); i++ {
			if tokens[i].Pos.Before(tokens[i-1].Pos) {
				t.Errorf("token %d at %s precedes token %d at %s",
					i, tokens[i].Pos, i-1, tokens[i-1].Pos)
			}
		}
	})
}
