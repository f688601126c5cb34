package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/tagtree/pkg/markup"
)

// sourceIndent aligns source context under the diagnostic line.
const sourceIndent = "        "

// FormatMarkupError formats a parse failure for terminal output:
//
//	path:line:col  error  message  (kind)
//	        <source line>
//	        ^
//
// Errors that are not *markup.Error are rendered without location.
func (s *Styles) FormatMarkupError(path, source string, err error) string {
	var builder strings.Builder

	var merr *markup.Error
	if !errors.As(err, &merr) {
		builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(path),
			s.Error.Render("error"),
			s.Message.Render(err.Error()),
		))
		return builder.String()
	}

	location := s.FilePath.Render(path)
	pos, hasPos := merr.Position()
	if hasPos {
		location = fmt.Sprintf("%s:%d:%d", location, pos.Line+1, pos.Column+1)
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(errors.Unwrap(merr).Error()),
		s.Kind.Render("("+merr.Kind.String()+")"),
	))

	if hasPos {
		if line, ok := sourceLine(source, pos.Line); ok {
			builder.WriteString(s.FormatSourceContext(line, pos.Column+1))
		}
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret under the
// 1-based column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := sourceIndent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, nodeCount int) string {
	header := s.FilePath.Render(path)
	if nodeCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d nodes)", nodeCount))
	}
	return header
}

// sourceLine returns the zero-based line of source.
func sourceLine(source string, line int) (string, bool) {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return "", false
	}
	return lines[line], true
}
