// Package diff computes line-based unified diffs between a document and its
// formatted form.
package diff

import (
	"fmt"
	"strings"
)

// Context is the number of unchanged lines shown around each change.
const Context = 3

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged line.
	LineContext LineKind = iota

	// LineAdd is a line present only in the new content.
	LineAdd

	// LineRemove is a line present only in the old content.
	LineRemove
)

// Line is a single line of a hunk, without its diff prefix.
type Line struct {
	Kind LineKind
	Text string
}

// Hunk is a run of changes with surrounding context. Start positions are
// 1-based; a zero count follows the unified format and points at the line
// before the empty range.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Diff is the unified diff of one file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Compute returns the diff from before to after, or nil when they have the
// same lines.
func Compute(path string, before, after []byte) *Diff {
	ops := script(splitLines(before), splitLines(after))

	d := &Diff{Path: path}
	for _, op := range ops {
		switch op.Kind {
		case LineAdd:
			d.Additions++
		case LineRemove:
			d.Deletions++
		}
	}
	if d.Additions == 0 && d.Deletions == 0 {
		return nil
	}

	d.Hunks = hunks(ops)
	return d
}

// HasChanges reports whether the diff has any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// Header returns the "diff --git" line for the file.
func (d *Diff) Header() string {
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format, starting with the ---/+++ lines.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range d.Hunks {
		sb.WriteString(h.Range())
		sb.WriteByte('\n')
		for _, line := range h.Lines {
			sb.WriteString(line.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Range returns the "@@ -a,b +c,d @@" line of the hunk.
func (h Hunk) Range() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// String returns the line with its diff prefix.
func (l Line) String() string {
	switch l.Kind {
	case LineAdd:
		return "+" + l.Text
	case LineRemove:
		return "-" + l.Text
	default:
		return " " + l.Text
	}
}

// splitLines splits content into lines without their terminators.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

// script returns the edit script turning before into after. It walks a table of
// suffix LCS lengths, so removals come before additions within a change.
func script(before, after []string) []Line {
	lcs := make([][]int, len(before)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(after)+1)
	}
	for i := len(before) - 1; i >= 0; i-- {
		for j := len(after) - 1; j >= 0; j-- {
			if before[i] == after[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]Line, 0, max(len(before), len(after)))
	i, j := 0, 0
	for i < len(before) && j < len(after) {
		switch {
		case before[i] == after[j]:
			ops = append(ops, Line{LineContext, before[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, Line{LineRemove, before[i]})
			i++
		default:
			ops = append(ops, Line{LineAdd, after[j]})
			j++
		}
	}
	for ; i < len(before); i++ {
		ops = append(ops, Line{LineRemove, before[i]})
	}
	for ; j < len(after); j++ {
		ops = append(ops, Line{LineAdd, after[j]})
	}

	return ops
}

// hunks groups the edit script into hunks. Changes separated by no more
// than twice Context unchanged lines share a hunk.
func hunks(ops []Line) []Hunk {
	var out []Hunk

	for i := 0; i < len(ops); i++ {
		if ops[i].Kind == LineContext {
			continue
		}

		start := max(0, i-Context)
		last := i
		for j := i + 1; j < len(ops) && j-last <= 2*Context; j++ {
			if ops[j].Kind != LineContext {
				last = j
			}
		}
		end := min(len(ops), last+1+Context)

		out = append(out, buildHunk(ops, start, end))
		i = end - 1
	}

	return out
}

func buildHunk(ops []Line, start, end int) Hunk {
	h := Hunk{OldStart: 1, NewStart: 1}
	for _, op := range ops[:start] {
		if op.Kind != LineAdd {
			h.OldStart++
		}
		if op.Kind != LineRemove {
			h.NewStart++
		}
	}

	h.Lines = ops[start:end]
	for _, op := range h.Lines {
		if op.Kind != LineAdd {
			h.OldCount++
		}
		if op.Kind != LineRemove {
			h.NewCount++
		}
	}

	if h.OldCount == 0 {
		h.OldStart--
	}
	if h.NewCount == 0 {
		h.NewStart--
	}

	return h
}
