package pretty

import (
	"strings"

	"github.com/yaklabco/tagtree/pkg/diff"
)

// FormatDiff renders a unified diff in git style, followed by a blank line.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(s.DiffHeader.Render(d.Header()) + "\n")

	for _, line := range strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n") {
		sb.WriteString(s.diffLine(line) + "\n")
	}

	sb.WriteString("\n")
	return sb.String()
}

func (s *Styles) diffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}
