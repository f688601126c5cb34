package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/pkg/dom"
	"github.com/yaklabco/tagtree/pkg/lexer"
	"github.com/yaklabco/tagtree/pkg/parser"
)

func parse(t *testing.T, input string) (*dom.Tree, error) {
	t.Helper()

	tokens, err := lexer.Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	return parser.ParseTokens(tokens)
}

func mustParse(t *testing.T, input string) *dom.Tree {
	t.Helper()

	tree, err := parse(t, input)
	require.NoError(t, err, "parse %q", input)
	require.NotNil(t, tree)
	return tree
}

func TestParse_SelfClosing(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `<a foo="bar"/>`)
	root := tree.Root()

	assert.Equal(t, "a", tree.TagName(root))
	assert.True(t, tree.IsElement(root))
	assert.Empty(t, tree.Children(root))

	v, ok := tree.Attr(root, "foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestParse_TextChild(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `<a one="two"><one>one in a million</one></a>`)
	root := tree.Root()

	assert.Equal(t, "a", tree.TagName(root))
	children := tree.Children(root)
	require.Len(t, children, 1)

	child := children[0]
	assert.Equal(t, "one", tree.TagName(child))
	assert.True(t, tree.IsText(child))
	assert.Equal(t, "one in a million", tree.Text(child))

	parent, ok := tree.Parent(child)
	require.True(t, ok)
	assert.Equal(t, root, parent)
}

func TestParse_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty content", `<a></a>`, `<a/>`},
		{"empty content with attributes", `<a x=1></a>`, `<a x='1'/>`},
		{"comment only", `<a><!-- c --></a>`, `<a/>`},
		{"trailing tag ignored", `<a/><b/>`, `<a/>`},
		{"siblings", `<a><b/><c/></a>`, `<a><b/><c/></a>`},
		{"nested", "<a>\n  <b>\n    <c k='v'/>\n  </b>\n</a>", `<a><b><c k='v'/></b></a>`},
		{"text with attributes", `<p class=intro>hello there</p>`, `<p class='intro'>hello there</p>`},
		{"duplicate attribute last wins", `<a k=1 k=2/>`, `<a k='2'/>`},
		{"declaration skipped", `<!DOCTYPE html><html><body/></html>`, `<html><body/></html>`},
		{"comment between children", `<a><b/><!-- c --><d/></a>`, `<a><b/><d/></a>`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tree := mustParse(t, testCase.input)
			assert.Equal(t, testCase.want, tree.String())
		})
	}
}

func TestParse_EmptyContentIsElement(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `<a x=1><b></b></a>`)
	root := tree.Root()
	assert.True(t, tree.IsElement(root))

	children := tree.Children(root)
	require.Len(t, children, 1)
	assert.True(t, tree.IsElement(children[0]))
	assert.Empty(t, tree.Children(children[0]))

	require.NoError(t, tree.AppendElement(children[0], tree.NewElement("c")))
	assert.Equal(t, `<a><b><c/></b></a>`, tree.String())
}

func TestParser_Strict(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize(`<a/><b/>`)
	require.NoError(t, err)

	tree, err := parser.New(tokens).Strict().Parse()
	require.Error(t, err)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)

	var parseErr *parser.Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, lexer.Position{Line: 0, Column: 4}, parseErr.Position())

	tokens, err = lexer.Tokenize(`<a><b/></a>`)
	require.NoError(t, err)
	tree, err = parser.New(tokens).Strict().Parse()
	require.NoError(t, err)
	assert.Equal(t, `<a><b/></a>`, tree.String())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantTag string
		wantPos lexer.Position
	}{
		{"mismatched closing tag", `<a></b>`, parser.ErrUnclosedTag, "a", lexer.Position{Line: 0, Column: 1}},
		{"missing closing tag", `<a>`, parser.ErrUnclosedTag, "a", lexer.Position{Line: 0, Column: 1}},
		{"text without closing", `<a>text`, parser.ErrUnclosedTag, "a", lexer.Position{Line: 0, Column: 1}},
		{"eof inside child", `<a><b`, parser.ErrUnclosedTag, "a", lexer.Position{Line: 0, Column: 1}},
		{"eof after child", "<a>\n<b/>", parser.ErrUnclosedTag, "a", lexer.Position{Line: 0, Column: 1}},
		{"inner tag unclosed", "<a>\n <b>", parser.ErrUnclosedTag, "b", lexer.Position{Line: 1, Column: 2}},
		{"truncated closing tag", `<a></`, parser.ErrUnclosedTag, "a", lexer.Position{Line: 0, Column: 1}},
		{"missing equals", `<a b c/>`, parser.ErrUnexpectedToken, "", lexer.Position{Line: 0, Column: 5}},
		{"missing value", `<a b=/>`, parser.ErrUnexpectedToken, "", lexer.Position{Line: 0, Column: 5}},
		{"mixed content", `<a><b/>text</a>`, parser.ErrUnexpectedToken, "", lexer.Position{Line: 0, Column: 7}},
		{"text at top level", `hello`, parser.ErrUnexpectedToken, "", lexer.Position{Line: 0, Column: 0}},
		{"empty input", ``, parser.ErrUnexpectedEOF, "", lexer.Position{}},
		{"unterminated declaration", `<!DOCTYPE html`, parser.ErrUnexpectedEOF, "", lexer.Position{Line: 0, Column: 10}},
		{"declaration only", `<!DOCTYPE html>`, parser.ErrUnexpectedEOF, "", lexer.Position{Line: 0, Column: 14}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tree, err := parse(t, testCase.input)
			require.Error(t, err)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, testCase.wantErr)

			var parseErr *parser.Error
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, testCase.wantTag, parseErr.Tag)
			assert.Equal(t, testCase.wantPos, parseErr.Position())
		})
	}
}

func TestParse_UnexpectedTokenDetails(t *testing.T) {
	t.Parallel()

	_, err := parse(t, `<a b=>`)
	require.Error(t, err)

	var parseErr *parser.Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, lexer.TokCloseAngle, parseErr.Found)
	assert.Equal(t, []lexer.TokenKind{lexer.TokIdentifier, lexer.TokLiteral}, parseErr.Expected)
	assert.Equal(t, "unexpected token close-angle at 1:6, expected identifier or literal", err.Error())
}

func TestParse_UnclosedTagMessage(t *testing.T) {
	t.Parallel()

	_, err := parse(t, `<a></b>`)
	require.Error(t, err)
	assert.Equal(t, `unclosed tag "a" opened at 1:2`, err.Error())
}

func TestParser_Reusable(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize(`<a><b/></a>`)
	require.NoError(t, err)

	p := parser.New(tokens)
	first, err := p.Parse()
	require.NoError(t, err)
	second, err := p.Parse()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 2, second.Len())
}
