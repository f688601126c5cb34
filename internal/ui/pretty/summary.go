package pretty

import (
	"fmt"
	"strings"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FmtStats counts the outcome of a fmt run.
type FmtStats struct {
	FilesChecked int
	FilesChanged int
	FilesFailed  int
	FilesSkipped int
	// Written is set when changed files were rewritten rather than reported.
	Written bool
}

// FormatFmtSummary formats fmt statistics as a single line.
// Example: "2 files would be reformatted, 1 failed to parse (5 files checked)".
func (s *Styles) FormatFmtSummary(stats FmtStats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesChecked, plural(stats.FilesChecked)))

	if stats.FilesChanged == 0 && stats.FilesFailed == 0 && stats.FilesSkipped == 0 {
		return s.Success.Render("All files formatted") + checked + "\n"
	}

	var parts []string
	if stats.FilesChanged > 0 {
		verb := "would be reformatted"
		if stats.Written {
			verb = "reformatted"
		}
		msg := fmt.Sprintf("%d %s %s", stats.FilesChanged, plural(stats.FilesChanged), verb)
		if stats.Written {
			parts = append(parts, s.Success.Render(msg))
		} else {
			parts = append(parts, s.Warning.Render(msg))
		}
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d left alone", stats.FilesSkipped)))
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed to parse", stats.FilesFailed)))
	}

	return strings.Join(parts, ", ") + checked + "\n"
}

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
